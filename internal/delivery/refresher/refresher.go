// Package refresher keeps the in-memory geofence index in step with the shared snapshot.
package refresher

import (
	"context"
	"log/slog"
	"time"

	"tourguard/config"
	"tourguard/internal/delivery"
	"tourguard/internal/usecase"

	"go.uber.org/fx"
)

type geofenceRefresher struct {
	interval   time.Duration
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
	done       chan struct{}
}

// Params holds dependencies for the geofence refresher
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	GeofenceUC usecase.GeofenceUsecase
}

// New creates a delivery that reloads geofences every geofence.refreshInterval.
func New(params Params) delivery.Delivery {
	interval := 30 * time.Second
	if params.Config.Geofence != nil && params.Config.Geofence.RefreshInterval > 0 {
		interval = params.Config.Geofence.RefreshInterval
	}

	r := &geofenceRefresher{
		interval:   interval,
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
		done:       make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(r.done)

			return nil
		},
	})

	return r
}

// Serve refreshes once, then on every tick until stopped.
func (r *geofenceRefresher) Serve(ctx context.Context) error {
	r.logger.Info("Starting geofence refresher", slog.Duration("interval", r.interval))
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.done:
			return nil
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *geofenceRefresher) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	if err := r.geofenceUC.Refresh(refreshCtx); err != nil {
		r.logger.Error("Geofence refresh failed", slog.Any("error", err))
	}
}
