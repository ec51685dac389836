// Package context carries the per-request scope (request id, logger, actor)
// from a delivery into the use cases it calls.
package context

import (
	"context"
	"log/slog"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	actorKey
)

// HeaderXRequestID is the HTTP header carrying the request id.
const HeaderXRequestID = "X-Request-Id"

const echoRequestIDKey = "request_id"

// GetRequestID returns the request id stored on c, falling back to the request
// context and finally to a fresh id.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request id on c for response envelopes.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithScope starts a request scope: ctx gets requestID and a child of base
// tagged with it. The child logger is returned as well.
func WithScope(ctx context.Context, requestID string, base *slog.Logger) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger), logger
}

// WithActor returns a copy of ctx carrying the authenticated actor. The scoped
// logger, if any, is tagged with the actor's id and role.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	ctx = context.WithValue(ctx, actorKey, actor)
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(
			slog.String("user_id", actor.UserID.String()),
			slog.String("role", string(actor.Role))))
	}

	return ctx
}

// ActorFromContext returns the actor stored by WithActor.
func ActorFromContext(ctx context.Context) (entity.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entity.Actor)

	return actor, ok
}
