package weather_fx

import (
	"go.uber.org/fx"

	"yatra/internal/services"
)

var Module = fx.Provide(provideWeatherService)

func provideWeatherService() (services.WeatherServiceInterface, error) {
	return services.NewOpenWeatherClient()
}
