package main

import (
	"context"
	"log/slog"
	"os"

	"tourguard/config"
	"tourguard/internal/delivery"
	"tourguard/internal/delivery/api"
	"tourguard/internal/delivery/api/middleware"
	"tourguard/internal/delivery/api/router/handler"
	"tourguard/internal/delivery/refresher"
	"tourguard/internal/delivery/subscriber"
	"tourguard/internal/domain/geofence"
	"tourguard/internal/domain/incident"
	"tourguard/internal/infra/auth"
	"tourguard/internal/infra/cache"
	logs "tourguard/internal/infra/log"
	"tourguard/internal/infra/notification"
	"tourguard/internal/infra/persistence/postgres"
	"tourguard/internal/infra/pubsub"
	"tourguard/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectDomain(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewGeofenceRepository,
			postgres.NewAlertRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			cache.NewGeofenceSnapshotCache,
		),
		pubsub.Module,
		notification.Module,
	)
}

func injectDomain() fx.Option {
	return fx.Provide(
		geofence.NewIndex,
		geofence.NewEvaluator,
		newIncidentMachine,
	)
}

func newIncidentMachine() *incident.Machine {
	return incident.NewMachine(nil)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchPolicy,
			impl.NewAlertDispatcher,
			impl.NewGeofenceService,
			impl.NewCoordinator,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			newHealthChecks,
			handler.NewHealthHandler,
			handler.NewLocationHandler,
			handler.NewIncidentHandler,
			handler.NewAlertHandler,
			handler.NewGeofenceHandler,
		),
	)
}

// newHealthChecks probes PostgreSQL and, when configured, Redis.
func newHealthChecks(db *gorm.DB, rdb *redis.Client) handler.HealthChecks {
	checks := handler.HealthChecks{
		"postgres": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}

			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}

	return checks
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				subscriber.NewLocationSubscriber,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				refresher.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
