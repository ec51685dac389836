package model

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
// Rows are never deleted; deactivation clears IsActive.
type GeofenceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Latitude     float64   `gorm:"type:double precision;not null"`
	Longitude    float64   `gorm:"type:double precision;not null"`
	RadiusMeters float64   `gorm:"type:double precision;not null;check:radius_meters > 0"`
	IsSafe       bool      `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	CreatedBy    uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}
