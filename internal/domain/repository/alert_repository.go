package repository

import (
	"context"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertRepository defines the interface for alert persistence.
// Implementations must make it impossible for two alerts with the same
// incident and channel to be pending at the same time.
type AlertRepository interface {
	// Create persists a new alert. A conflicting pending alert yields ErrDuplicatePendingAlert.
	Create(ctx context.Context, alert *entity.Alert) error

	// FindByID retrieves an alert.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// FindPending returns the pending alert for the pair, or ErrAlertNotFound.
	FindPending(ctx context.Context, incidentID uuid.UUID, channel entity.Channel) (*entity.Alert, error)

	// ListByIncident returns the incident's alerts oldest first.
	ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*entity.Alert, error)

	// CompareAndSwapStatus writes status, detail, attempts and timestamps from next only if
	// the stored status still equals expected. Otherwise it returns ErrStatusMismatch.
	// Moving an alert back to pending may yield ErrDuplicatePendingAlert.
	CompareAndSwapStatus(ctx context.Context, next *entity.Alert, expected entity.AlertStatus) error
}
