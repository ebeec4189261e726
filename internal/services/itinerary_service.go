package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	dbm "yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type ItineraryServiceInterface interface {
	// GenerateItinerary performs the single provider attempt and parses the
	// response. The parse step cannot fail; only the provider call can.
	GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (ParsedItinerary, error)

	// SaveItinerary persists a freshly generated plan and returns its new
	// identifier.
	SaveItinerary(ctx context.Context, req request_models.ItineraryRequest, parsed ParsedItinerary) (uuid.UUID, error)

	GetItinerary(ctx context.Context, itineraryID string) (*dbm.Itinerary, error)

	// RefineItinerary re-invokes the provider with the edit instruction and
	// the current body, then overwrites the stored record. The identifier is
	// never changed.
	RefineItinerary(ctx context.Context, instruction string, currentContent string) (ParsedItinerary, error)

	SaveRefinement(ctx context.Context, itineraryID string, parsed ParsedItinerary) error
}

type itineraryService struct {
	generator utils.GenerationClientInterface
	refiner   utils.RefinementClientInterface
	repo      repositories.ItineraryRepository
}

func NewItineraryService(
	generator utils.GenerationClientInterface,
	refiner utils.RefinementClientInterface,
	repo repositories.ItineraryRepository,
) ItineraryServiceInterface {
	return &itineraryService{
		generator: generator,
		refiner:   refiner,
		repo:      repo,
	}
}

func (s *itineraryService) GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (ParsedItinerary, error) {
	prompt := BuildItineraryPrompt(req)

	raw, err := s.generator.GenerateItinerary(ctx, prompt)
	if err != nil {
		return ParsedItinerary{}, err
	}

	parsed := ParseItineraryResponse(raw)
	if parsed.Recovered {
		log.Printf("Itinerary response format recovery applied for destination %q", req.Destination)
	}
	return parsed, nil
}

func (s *itineraryService) SaveItinerary(ctx context.Context, req request_models.ItineraryRequest, parsed ParsedItinerary) (uuid.UUID, error) {
	interests, err := json.Marshal(req.Interests)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	itinerary := dbm.Itinerary{
		Destination: req.Destination,
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		Interests:   datatypes.JSON(interests),
		Pace:        req.Pace,
		Mobility:    optional(req.Mobility),
		Transport:   optional(req.Transport),
		Content:     parsed.Content,
		Reasoning:   parsed.Reasoning,
	}

	return s.repo.Create(ctx, &itinerary)
}

func (s *itineraryService) GetItinerary(ctx context.Context, itineraryID string) (*dbm.Itinerary, error) {
	return s.repo.GetByID(ctx, itineraryID)
}

func (s *itineraryService) RefineItinerary(ctx context.Context, instruction string, currentContent string) (ParsedItinerary, error) {
	raw, err := s.refiner.RefineItinerary(ctx,
		BuildRefinementSystemPrompt(),
		BuildRefinementUserPrompt(instruction, currentContent))
	if err != nil {
		return ParsedItinerary{}, err
	}

	return ParseRefinementResponse(raw), nil
}

func (s *itineraryService) SaveRefinement(ctx context.Context, itineraryID string, parsed ParsedItinerary) error {
	return s.repo.UpdateContent(ctx, itineraryID, parsed.Content, parsed.Reasoning)
}

func parseDate(value string) time.Time {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
