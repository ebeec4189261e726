package response_models

type CurrentConditions struct {
	Temperature int     `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Icon        string  `json:"icon"`
}

type TemperatureRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type ForecastDay struct {
	Date          string           `json:"date"`
	Temperature   TemperatureRange `json:"temperature"`
	Description   string           `json:"description"`
	Icon          string           `json:"icon"`
	Precipitation int              `json:"precipitation"`
}

// WeatherReport is built fresh per request and never persisted. Forecast
// holds up to 5 entries, one per calendar day.
type WeatherReport struct {
	City     string            `json:"city"`
	Country  string            `json:"country"`
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastDay     `json:"forecast"`
}
