package model

import (
	"time"

	"github.com/google/uuid"
)

// TouristProfileModel is the GORM-specific struct for the 'tourist_profiles' table.
type TouristProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    string    `gorm:"type:varchar(16);not null;default:'active'"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TouristProfileModel) TableName() string {
	return "tourist_profiles"
}
