// Package pubsub implements the Broadcaster that fans domain events out to
// live dashboards and the alert retry worker.
package pubsub

import (
	"context"
	"log/slog"

	"tourguard/config"
	"tourguard/internal/domain/constants"
	"tourguard/internal/domain/entity"
	"tourguard/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopBroadcaster drops every event. Used when broadcasting is disabled.
type noopBroadcaster struct {
	logger *slog.Logger
}

// NewNoopBroadcaster returns a Broadcaster that only logs at debug level.
func NewNoopBroadcaster(logger *slog.Logger) service.Broadcaster {
	return &noopBroadcaster{logger: logger}
}

func (b *noopBroadcaster) Publish(ctx context.Context, event *entity.BroadcastEvent) error {
	b.logger.Debug("[NoopBroadcaster] Broadcasting disabled, skipping",
		slog.String("topic", event.Topic),
		slog.String("event", event.Event),
	)

	return nil
}

func (b *noopBroadcaster) Close() error {
	return nil
}

// BroadcasterParams holds dependencies for the Broadcaster, injected by Fx
type BroadcasterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBroadcaster creates a Broadcaster based on configuration
func NewBroadcaster(params BroadcasterParams) (service.Broadcaster, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("Broadcasting not configured, using no-op broadcaster")

		return NewNoopBroadcaster(logger), nil
	}

	var broadcaster service.Broadcaster
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP broadcaster",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		broadcaster = NewLocalHTTPBroadcaster(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub broadcaster",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		broadcaster, err = NewGooglePubSubBroadcaster(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderAMQP:
		if cfg.AMQPURL == "" {
			return nil, errors.New("amqp url is required for amqp provider")
		}
		logger.Info("Using AMQP broadcaster",
			slog.String("exchange", cfg.Exchange),
		)

		broadcaster, err = NewAMQPBroadcaster(cfg.AMQPURL, cfg.Exchange, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Broadcaster")

			return broadcaster.Close()
		},
	})

	return broadcaster, nil
}

// eventAttributes are the message attributes used for filtering and tracing.
func eventAttributes(event *entity.BroadcastEvent) map[string]string {
	attributes := map[string]string{
		"topic": event.Topic,
		"event": event.Event,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// Module provides the Broadcaster FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBroadcaster),
)
