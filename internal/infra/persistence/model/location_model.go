package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TouristLocationModel is the GORM-specific struct for the 'tourist_locations' table.
// It holds one row per tourist: the latest accepted position and the fences containing it.
type TouristLocationModel struct {
	TouristID   uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	Latitude    float64                        `gorm:"type:double precision;not null"`
	Longitude   float64                        `gorm:"type:double precision;not null"`
	GeofenceIDs datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb;not null"`
	RecordedAt  time.Time                      `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TouristLocationModel) TableName() string {
	return "tourist_locations"
}

// LocationHistoryModel is the GORM-specific struct for the append-only 'location_history' table.
type LocationHistoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_location_history_user_time"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	Accuracy   *float64  `gorm:"type:double precision"`
	Speed      *float64  `gorm:"type:double precision"`
	Heading    *float64  `gorm:"type:double precision"`
	RecordedAt time.Time `gorm:"not null;index:idx_location_history_user_time,sort:desc"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationHistoryModel) TableName() string {
	return "location_history"
}
