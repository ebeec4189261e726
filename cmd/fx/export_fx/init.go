package export_fx

import (
	"go.uber.org/fx"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(provideExportService)

func provideExportService(repo repositories.ItineraryRepository) services.ExportServiceInterface {
	return services.NewExportService(repo)
}
