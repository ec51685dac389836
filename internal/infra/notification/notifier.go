// Package notification delivers alerts to authorities over push, SMS, email
// and voice channels.
package notification

import (
	"context"
	"log/slog"

	"tourguard/config"
	"tourguard/internal/domain/entity"
	"tourguard/internal/domain/service"
	"tourguard/internal/errors"

	"go.uber.org/fx"
)

// ChannelSender delivers one channel's messages.
type ChannelSender interface {
	Send(ctx context.Context, contact string, channel entity.Channel, message string) (detail string, err error)
}

// ErrChannelUnavailable is returned for a channel without a configured gateway.
var ErrChannelUnavailable = errors.New("no gateway configured for channel")

// channelRouter implements service.Notifier by picking a sender per channel.
type channelRouter struct {
	senders map[entity.Channel]ChannelSender
}

// NewChannelRouter creates a Notifier from the given senders.
func NewChannelRouter(senders map[entity.Channel]ChannelSender) service.Notifier {
	return &channelRouter{senders: senders}
}

func (r *channelRouter) Send(ctx context.Context, contact string, channel entity.Channel, message string) (string, error) {
	sender, ok := r.senders[channel]
	if !ok {
		return "", errors.Wrapf(ErrChannelUnavailable, "channel %s", channel)
	}

	return sender.Send(ctx, contact, channel, message)
}

// simulatedSender logs alerts and reports success. Used in development.
type simulatedSender struct {
	logger *slog.Logger
}

// NewSimulatedSender creates a sender that never leaves the process
func NewSimulatedSender(logger *slog.Logger) ChannelSender {
	return &simulatedSender{logger: logger}
}

func (s *simulatedSender) Send(ctx context.Context, contact string, channel entity.Channel, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	s.logger.Info("[SimulatedNotifier] Alert delivered",
		slog.String("channel", string(channel)),
		slog.String("contact", contact),
		slog.String("message", message),
	)

	return "simulated delivery", nil
}

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier wires one sender per channel from configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notifier
	logger := params.Logger

	if cfg == nil || cfg.Simulate {
		logger.Info("Notifier running in simulate mode")
		simulated := NewSimulatedSender(logger)

		return NewChannelRouter(map[entity.Channel]ChannelSender{
			entity.ChannelPush:  simulated,
			entity.ChannelSMS:   simulated,
			entity.ChannelEmail: simulated,
			entity.ChannelCall:  simulated,
		}), nil
	}

	senders := make(map[entity.Channel]ChannelSender)

	if fb := params.Config.Firebase; fb != nil && fb.CredentialsPath != "" {
		push, err := NewFirebaseSender(params.Ctx, fb.ProjectID, fb.CredentialsPath)
		if err != nil {
			return nil, err
		}
		senders[entity.ChannelPush] = push
	}

	endpoints := map[entity.Channel]string{
		entity.ChannelSMS:   cfg.SMSEndpoint,
		entity.ChannelEmail: cfg.EmailEndpoint,
		entity.ChannelCall:  cfg.CallEndpoint,
	}
	for channel, endpoint := range endpoints {
		if endpoint == "" {
			continue
		}
		senders[channel] = NewWebhookSender(endpoint, cfg.SigningSecret, cfg.MaxAttempts, cfg.Backoff, logger)
	}

	for _, channel := range []entity.Channel{entity.ChannelPush, entity.ChannelSMS, entity.ChannelEmail, entity.ChannelCall} {
		if _, ok := senders[channel]; !ok {
			logger.Warn("Alert channel has no gateway, alerts on it will fail",
				slog.String("channel", string(channel)))
		}
	}

	return NewChannelRouter(senders), nil
}

// Module provides the Notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
