package model

import (
	"time"

	"github.com/google/uuid"
)

// IncidentModel is the GORM-specific struct for the 'incidents' table.
type IncidentModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TouristID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_incidents_tourist_status"`
	Type        string     `gorm:"type:varchar(32);not null"`
	Description string     `gorm:"type:text"`
	Latitude    *float64   `gorm:"type:double precision"`
	Longitude   *float64   `gorm:"type:double precision"`
	Severity    string     `gorm:"type:varchar(16);not null"`
	Status      string     `gorm:"type:varchar(16);not null;index:idx_incidents_tourist_status;index"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (IncidentModel) TableName() string {
	return "incidents"
}
