package entity

import (
	"time"

	"github.com/google/uuid"
)

// Geofence is a named circular region flagged safe or unsafe.
type Geofence struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"` // Always > 0.
	Safe         bool       `json:"safe"`
	Active       bool       `json:"active"` // Inactive fences are kept for audit and never evaluated.
	CreatedBy    uuid.UUID  `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// GeofenceMatch is a fence annotated with its distance from a queried point.
type GeofenceMatch struct {
	Fence          *Geofence `json:"fence"`
	DistanceMeters float64   `json:"distance_meters"` // Distance from the point to the fence center.
	IsInside       bool      `json:"is_inside"`
}

// Containment partitions the fences containing a point.
type Containment struct {
	Safe   []*Geofence `json:"safe"`
	Unsafe []*Geofence `json:"unsafe"`
}

// All returns safe and unsafe fences together.
func (c Containment) All() []*Geofence {
	all := make([]*Geofence, 0, len(c.Safe)+len(c.Unsafe))
	all = append(all, c.Safe...)

	return append(all, c.Unsafe...)
}
