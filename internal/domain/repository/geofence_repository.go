package repository

import (
	"context"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceRepository defines the interface for geofence persistence.
type GeofenceRepository interface {
	// Create persists a new geofence.
	Create(ctx context.Context, fence *entity.Geofence) error

	// Update overwrites every mutable field of an existing geofence.
	Update(ctx context.Context, fence *entity.Geofence) error

	// FindByID retrieves a geofence, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error)

	// List returns geofences ordered by creation time. Inactive ones are included only when includeInactive is set.
	List(ctx context.Context, includeInactive bool) ([]*entity.Geofence, error)

	// SetActive flips the active flag. It returns ErrGeofenceNotFound for unknown ids.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
