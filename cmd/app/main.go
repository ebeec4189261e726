package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"yatra/cmd/fx/controllers_fx"
	"yatra/cmd/fx/db_fx"
	"yatra/cmd/fx/export_fx"
	"yatra/cmd/fx/itinerary_fx"
	"yatra/cmd/fx/suggestion_fx"
	"yatra/cmd/fx/weather_fx"
	"yatra/internal/api/controllers"
	"yatra/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		itinerary_fx.Module,
		weather_fx.Module,
		suggestion_fx.Module,
		export_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	weatherController *controllers.WeatherController,
	exportController *controllers.ExportController,
	suggestionController *controllers.SuggestionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, weatherController, exportController, suggestionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	weatherController *controllers.WeatherController,
	exportController *controllers.ExportController,
	suggestionController *controllers.SuggestionController) {

	api := r.Group("/api")

	itineraryGroup := api.Group("/itinerary")
	itineraryGroup.POST("/stream", itineraryController.StreamItineraryHandler)
	itineraryGroup.POST("/refine", itineraryController.RefineItineraryHandler)

	api.GET("/weather", weatherController.GetCityWeatherHandler)
	api.GET("/suggestions", suggestionController.ListSuggestionsHandler)

	exportGroup := api.Group("/export")
	exportGroup.POST("/ics", exportController.ExportICSHandler)
	exportGroup.POST("/markdown", exportController.ExportMarkdownHandler)
}
