package service

import (
	"context"

	"tourguard/internal/domain/entity"
)

// Broadcaster fans events out to live dashboards. Delivery is best-effort.
type Broadcaster interface {
	// Publish sends the event to its topic.
	Publish(ctx context.Context, event *entity.BroadcastEvent) error

	// Close releases any resources held by the broadcaster
	Close() error
}
