package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tourguard/internal/delivery/context"
	"tourguard/internal/domain/entity"
	"tourguard/internal/domain/service"

	"github.com/google/uuid"
)

// publish sends a broadcast event. Failures are logged and never returned.
func publish(ctx context.Context, broadcaster service.Broadcaster, logger *slog.Logger, topic, event string, actorID uuid.UUID, payload any, at time.Time) {
	if broadcaster == nil {
		return
	}

	err := broadcaster.Publish(ctx, &entity.BroadcastEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Topic:     topic,
		Event:     event,
		ActorID:   actorID,
		Payload:   payload,
		Timestamp: at.UTC(),
	})
	if err != nil {
		logger.Warn("Broadcast failed",
			slog.String("topic", topic),
			slog.String("event", event),
			slog.Any("error", err))
	}
}
