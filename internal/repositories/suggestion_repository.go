package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

type SuggestionFilter struct {
	Region   string
	TripType string
	Search   string
}

type SuggestionRepository interface {
	List(ctx context.Context, filter SuggestionFilter, page int, limit int) ([]dbm.SuggestedTrip, int64, error)
}

type suggestionRepository struct {
	db *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) List(ctx context.Context, filter SuggestionFilter, page int, limit int) ([]dbm.SuggestedTrip, int64, error) {
	query := r.db.WithContext(ctx).Model(&dbm.SuggestedTrip{})

	if filter.Region != "" && filter.Region != "all" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.TripType != "" && filter.TripType != "all" {
		query = query.Where("trip_type = ?", filter.TripType)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR destination ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, utils.ErrDatabaseError
	}

	var trips []dbm.SuggestedTrip
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&trips).Error
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}

	return trips, total, nil
}
