package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertPendingIndex is the partial unique index allowing one pending alert per incident and channel.
const AlertPendingIndex = "alerts_one_pending"

// AlertModel is the GORM-specific struct for the 'alerts' table.
type AlertModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	IncidentID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorityContact string    `gorm:"type:varchar(255);not null"`
	Message          string    `gorm:"type:text;not null"`
	Channel          string    `gorm:"type:varchar(16);not null"`
	Status           string    `gorm:"type:varchar(16);not null"`
	Detail           string    `gorm:"type:text"`
	Attempts         int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	SentAt           *time.Time
	AcknowledgedAt   *time.Time
	AcknowledgedBy   *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}
