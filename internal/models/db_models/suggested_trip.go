package db_models

import (
	"gorm.io/datatypes"
)

type SuggestedTrip struct {
	BaseModel
	Title       string `gorm:"not null"`
	Destination string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Highlights  datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	BestTime    string
	Duration    string
	Budget      string
	TripType    string `gorm:"index"`
	Region      string `gorm:"index"`
	CoverImage  *string
}
