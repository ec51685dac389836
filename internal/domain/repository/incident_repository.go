package repository

import (
	"context"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
)

// IncidentFilter narrows incident listings. Nil fields are ignored.
type IncidentFilter struct {
	TouristID *uuid.UUID
	Status    *entity.IncidentStatus
	Limit     int
	Offset    int
}

// IncidentRepository defines the interface for incident persistence.
type IncidentRepository interface {
	// Create persists a new incident.
	Create(ctx context.Context, incident *entity.Incident) error

	// FindByID retrieves an incident without its alerts.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Incident, error)

	// List returns incidents newest first.
	List(ctx context.Context, filter IncidentFilter) ([]*entity.Incident, error)

	// CompareAndSwapStatus writes status, assignee, resolvedAt and updatedAt from next
	// only if the stored status still equals expected. Otherwise it returns ErrStatusMismatch.
	CompareAndSwapStatus(ctx context.Context, next *entity.Incident, expected entity.IncidentStatus) error

	// CountOpenByTourist counts the tourist's non-terminal incidents, ignoring excludeID.
	CountOpenByTourist(ctx context.Context, touristID, excludeID uuid.UUID) (int64, error)
}
