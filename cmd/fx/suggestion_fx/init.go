package suggestion_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(provideSuggestionRepo, provideSuggestionService)

func provideSuggestionRepo(db *gorm.DB) repositories.SuggestionRepository {
	return repositories.NewSuggestionRepository(db)
}

func provideSuggestionService(repo repositories.SuggestionRepository) services.SuggestionServiceInterface {
	return services.NewSuggestionService(repo)
}
