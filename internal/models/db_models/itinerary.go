package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// Itinerary is a generated day-by-day plan. Refinement overwrites Content and
// Reasoning in place; the originating request fields never change.
type Itinerary struct {
	BaseModel
	Destination string    `gorm:"not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Budget      string    `gorm:"not null"`
	Travelers   int       `gorm:"not null"`
	Interests   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Pace        string    `gorm:"size:16"`
	Mobility    *string
	Transport   *string
	Content     string `gorm:"type:text"`
	Reasoning   string `gorm:"type:text"`
}
