package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfileStatus is the coarse safety status shown on dashboards.
type ProfileStatus string

const (
	ProfileStatusActive ProfileStatus = "active"
	ProfileStatusAlert  ProfileStatus = "alert"
)

// TouristProfile is the part of the tourist profile the service mutates.
type TouristProfile struct {
	UserID    uuid.UUID     `json:"user_id"`
	Status    ProfileStatus `json:"status"`
	UpdatedAt time.Time     `json:"updated_at"`
}
