package service

import (
	"context"

	"tourguard/internal/domain/entity"
)

// Notifier delivers an alert message to an authority contact.
type Notifier interface {
	// Send delivers message over channel. detail describes the provider's answer
	// on success and the failure reason otherwise. Send may be slow.
	Send(ctx context.Context, contact string, channel entity.Channel, message string) (detail string, err error)
}
