package itinerary_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	ProvideRefinementClient,
	provideItineraryRepo,
	provideItineraryService)

// ProvideGenerationClient verifies the Gemini credential at startup so a
// missing key is a descriptive boot failure rather than a request timeout.
func ProvideGenerationClient(lc fx.Lifecycle) (utils.GenerationClientInterface, error) {
	client, err := utils.NewGeminiGenerationClient(
		context.Background(),
		os.Getenv("GOOGLE_GEMINI_API_KEY"),
		os.Getenv("GEMINI_MODEL"),
	)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	log.Println("Gemini generation client initialized")
	return client, nil
}

func ProvideRefinementClient() (utils.RefinementClientInterface, error) {
	client, err := utils.NewOpenAIRefinementClient(
		os.Getenv("OPENAI_API_KEY"),
		os.Getenv("OPENAI_MODEL"),
	)
	if err != nil {
		return nil, err
	}

	log.Println("OpenAI refinement client initialized")
	return client, nil
}

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	generator utils.GenerationClientInterface,
	refiner utils.RefinementClientInterface,
	repo repositories.ItineraryRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, refiner, repo)
}
