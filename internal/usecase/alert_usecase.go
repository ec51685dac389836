package usecase

import (
	"context"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchInput is one request to alert an authority about an incident.
type DispatchInput struct {
	IncidentID uuid.UUID
	Channel    entity.Channel
	Message    string
	Contact    string
}

// AlertUsecase delivers alerts while keeping at most one pending alert per incident and channel.
type AlertUsecase interface {
	// Dispatch returns the pending alert for the pair if there is one. Otherwise it
	// creates one, calls the notifier and returns the alert in its final sent or
	// failed state. Only storage failures are returned as errors.
	Dispatch(ctx context.Context, in DispatchInput) (*entity.Alert, error)

	// Acknowledge marks a sent alert as acknowledged by an authority.
	Acknowledge(ctx context.Context, alertID uuid.UUID, actor entity.Actor) (*entity.Alert, error)

	// Retry re-sends a failed alert.
	Retry(ctx context.Context, alertID uuid.UUID) (*entity.Alert, error)

	// Get retrieves an alert by id.
	Get(ctx context.Context, alertID uuid.UUID) (*entity.Alert, error)
}
