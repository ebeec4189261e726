package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *dbm.Itinerary) (uuid.UUID, error)
	GetByID(ctx context.Context, itineraryID string) (*dbm.Itinerary, error)
	UpdateContent(ctx context.Context, itineraryID string, content string, reasoning string) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *dbm.Itinerary) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return itinerary.ID, nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, itineraryID string) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", itineraryID).
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrItineraryNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	return &itinerary, nil
}

// UpdateContent overwrites the generated body and rationale. The identifier
// and the originating request fields are left untouched.
func (r *itineraryRepository) UpdateContent(ctx context.Context, itineraryID string, content string, reasoning string) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.Itinerary{}).
		Where("id = ?", itineraryID).
		Updates(map[string]interface{}{
			"content":   content,
			"reasoning": reasoning,
		})

	if res.Error != nil {
		return utils.ErrDatabaseError
	}
	if res.RowsAffected == 0 {
		return utils.ErrItineraryNotFound
	}
	return nil
}
