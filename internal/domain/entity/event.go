package entity

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastEvent is the payload fanned out to live dashboards.
type BroadcastEvent struct {
	RequestID string    `json:"request_id,omitempty"`
	Topic     string    `json:"topic"`
	Event     string    `json:"event"`
	ActorID   uuid.UUID `json:"actor_id"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}
