// Package cache holds the Redis-backed state shared between API instances.
package cache

import (
	"context"
	"log/slog"

	"tourguard/config"
	"tourguard/internal/domain/lifecycle"
	"tourguard/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client. It returns nil when no address is configured;
// consumers then fall back to in-process state.
func NewClient(params Params) (*redis.Client, error) {
	rc := params.Config.Redis
	if rc == nil || rc.Addr == "" {
		params.Logger.Warn("Redis not configured, geofence snapshots stay in process")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", rc.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
