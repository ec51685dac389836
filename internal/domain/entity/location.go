package entity

import (
	"time"

	"github.com/google/uuid"
)

// TouristLocation is a single reported position.
type TouristLocation struct {
	UserID     uuid.UUID  `json:"user_id"`
	Coordinate Coordinate `json:"coordinate"`
	Timestamp  time.Time  `json:"timestamp"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	Speed      *float64   `json:"speed,omitempty"`
	Heading    *float64   `json:"heading,omitempty"`
}

// LocationHistoryEntry is an immutable row of the append-only location log.
type LocationHistoryEntry struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Coordinate Coordinate `json:"coordinate"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	Speed      *float64   `json:"speed,omitempty"`
	Heading    *float64   `json:"heading,omitempty"`
	RecordedAt time.Time  `json:"recorded_at"`
}

// MembershipSnapshot is the tourist's current location and the fences containing it.
// RecordedAt orders snapshots; an update older than the stored one is rejected.
type MembershipSnapshot struct {
	TouristID   uuid.UUID   `json:"tourist_id"`
	Coordinate  Coordinate  `json:"coordinate"`
	GeofenceIDs []uuid.UUID `json:"geofence_ids"`
	RecordedAt  time.Time   `json:"recorded_at"`
}
