package usecase

import (
	"context"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// CreateGeofenceInput describes a new geofence.
type CreateGeofenceInput struct {
	Name         string
	Description  string
	Center       entity.Coordinate
	RadiusMeters float64
	Safe         bool
}

// UpdateGeofenceInput is a partial update; nil fields are left unchanged.
type UpdateGeofenceInput struct {
	Name         *string
	Description  *string
	Center       *entity.Coordinate
	RadiusMeters *float64
	Safe         *bool
	Active       *bool
}

// GeofenceCheckResult answers which geofences contain or surround a point.
type GeofenceCheckResult struct {
	Point      entity.Coordinate      `json:"point"`
	Safe       []*entity.Geofence     `json:"safe"`
	Unsafe     []*entity.Geofence     `json:"unsafe"`
	Nearby     []entity.GeofenceMatch `json:"nearby"`
	InSafeZone bool                   `json:"in_safe_zone"`
	InDanger   bool                   `json:"in_danger_zone"`
}

// GeofenceUsecase administers geofences and keeps the in-memory index in sync.
type GeofenceUsecase interface {
	// Create stores a new geofence. Admin only.
	Create(ctx context.Context, actor entity.Actor, in CreateGeofenceInput) (*entity.Geofence, error)

	// Update applies a partial update. Admin only.
	Update(ctx context.Context, actor entity.Actor, id uuid.UUID, in UpdateGeofenceInput) (*entity.Geofence, error)

	// Deactivate soft-deletes a geofence. Unknown ids are not an error. Admin only.
	Deactivate(ctx context.Context, actor entity.Actor, id uuid.UUID) error

	// List returns geofences, including inactive ones when includeInactive is set.
	List(ctx context.Context, includeInactive bool) ([]*entity.Geofence, error)

	// Check runs containment and proximity queries for a point.
	Check(ctx context.Context, point entity.Coordinate, radiusMeters float64) (*GeofenceCheckResult, error)

	// GeoJSON exports the active geofences as a feature collection.
	GeoJSON(ctx context.Context) (*geojson.FeatureCollection, error)

	// Refresh reloads the in-memory index when the shared snapshot changed.
	Refresh(ctx context.Context) error
}
