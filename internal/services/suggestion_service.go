package services

import (
	"context"
	"encoding/json"
	"math"

	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type SuggestionServiceInterface interface {
	ListSuggestions(ctx context.Context, filter repositories.SuggestionFilter, page int, limit int) (*response_models.SuggestionListResponse, error)
}

type suggestionService struct {
	repo repositories.SuggestionRepository
}

func NewSuggestionService(repo repositories.SuggestionRepository) SuggestionServiceInterface {
	return &suggestionService{repo: repo}
}

func (s *suggestionService) ListSuggestions(ctx context.Context, filter repositories.SuggestionFilter, page int, limit int) (*response_models.SuggestionListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	result := make([]response_models.SuggestedTripResponse, 0, len(trips))
	for _, trip := range trips {
		var highlights []string
		if err := json.Unmarshal(trip.Highlights, &highlights); err != nil {
			highlights = nil
		}

		result = append(result, response_models.SuggestedTripResponse{
			ID:          trip.ID.String(),
			Title:       trip.Title,
			Destination: trip.Destination,
			Description: trip.Description,
			Highlights:  highlights,
			BestTime:    trip.BestTime,
			Duration:    trip.Duration,
			Budget:      trip.Budget,
			TripType:    trip.TripType,
			Region:      trip.Region,
			CoverImage:  trip.CoverImage,
			CreatedAt:   trip.CreatedAt,
		})
	}

	return &response_models.SuggestionListResponse{
		Trips: result,
		Pagination: response_models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}
