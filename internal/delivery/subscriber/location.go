// Package subscriber receives tourist positions published by devices over MQTT.
package subscriber

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"time"

	"tourguard/config"
	"tourguard/internal/delivery"
	deliverycontext "tourguard/internal/delivery/context"
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/usecase"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	handleTimeout  = 10 * time.Second
	disconnectWait = 250 // milliseconds
)

// locationMessage is the JSON body devices publish. Timestamp is in unix
// seconds; a fractional part is kept to the millisecond so two fixes within
// the same second still order.
type locationMessage struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Timestamp float64  `json:"timestamp" validate:"gte=0"`
	Accuracy  *float64 `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	Speed     *float64 `json:"speed,omitempty" validate:"omitempty,gte=0"`
	Heading   *float64 `json:"heading,omitempty" validate:"omitempty,gte=0,lt=360"`
}

// topicMatcher extracts the tourist id from topics like "tourguard/tourists/+/location".
type topicMatcher struct {
	segments []string
	idIndex  int
}

func newTopicMatcher(pattern string) (*topicMatcher, error) {
	segments := strings.Split(pattern, "/")
	idIndex := -1
	for i, seg := range segments {
		switch seg {
		case "+":
			if idIndex >= 0 {
				return nil, errors.Errorf("topic %q has more than one wildcard", pattern)
			}
			idIndex = i
		case "#":
			return nil, errors.Errorf("topic %q must not use a multi-level wildcard", pattern)
		}
	}
	if idIndex < 0 {
		return nil, errors.Errorf("topic %q needs a + segment for the tourist id", pattern)
	}

	return &topicMatcher{segments: segments, idIndex: idIndex}, nil
}

func (m *topicMatcher) touristID(topic string) (uuid.UUID, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != len(m.segments) {
		return uuid.Nil, errors.Errorf("topic %q does not match subscription", topic)
	}
	for i, seg := range m.segments {
		if i != m.idIndex && seg != parts[i] {
			return uuid.Nil, errors.Errorf("topic %q does not match subscription", topic)
		}
	}

	id, err := uuid.Parse(parts[m.idIndex])
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid tourist id in topic %q", topic)
	}

	return id, nil
}

// LocationSubscriber feeds MQTT location messages into the coordinator.
type LocationSubscriber struct {
	cfg           *config.MQTTConfig
	client        mqtt.Client
	matcher       *topicMatcher
	coordinatorUC usecase.CoordinatorUsecase
	validate      *validator.Validate
	logger        *slog.Logger
	done          chan struct{}
}

// LocationSubscriberParams holds dependencies for the MQTT subscriber
type LocationSubscriberParams struct {
	fx.In

	Lc            fx.Lifecycle
	Config        *config.Config
	Logger        *slog.Logger
	CoordinatorUC usecase.CoordinatorUsecase
}

// disabledSubscriber is returned when MQTT ingestion is switched off.
type disabledSubscriber struct{}

func (disabledSubscriber) Serve(context.Context) error { return nil }

// NewLocationSubscriber builds the MQTT delivery. It connects when Serve runs.
func NewLocationSubscriber(params LocationSubscriberParams) (delivery.Delivery, error) {
	cfg := params.Config.MQTT
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("MQTT location ingestion disabled")

		return disabledSubscriber{}, nil
	}
	if cfg.Broker == "" {
		return nil, errors.New("mqtt broker must be provided when mqtt is enabled")
	}

	matcher, err := newTopicMatcher(cfg.Topic)
	if err != nil {
		return nil, err
	}

	s := &LocationSubscriber{
		cfg:           cfg,
		matcher:       matcher,
		coordinatorUC: params.CoordinatorUC,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		logger:        params.Logger,
		done:          make(chan struct{}),
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetCleanSession(false).
		SetOnConnectHandler(s.onConnect).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			s.logger.Warn("MQTT connection lost", slog.Any("error", err))
		})
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username).SetPassword(cfg.Password)
	}
	s.client = mqtt.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve connects to the broker and blocks until the subscriber is stopped.
func (s *LocationSubscriber) Serve(ctx context.Context) error {
	s.logger.Info("Connecting to MQTT broker",
		slog.String("broker", s.cfg.Broker),
		slog.String("topic", s.cfg.Topic))

	// With connect retry on, the token completes once the first connection is up.
	token := s.client.Connect()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return errors.Wrap(err, "mqtt connect")
		}
	case <-ctx.Done():
		return nil
	case <-s.done:
		return nil
	}

	select {
	case <-ctx.Done():
	case <-s.done:
	}

	return nil
}

// onConnect subscribes on every (re)connect; the broker may have lost the session.
func (s *LocationSubscriber) onConnect(client mqtt.Client) {
	token := client.Subscribe(s.cfg.Topic, s.cfg.QoS, s.handleMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		s.logger.Error("MQTT subscribe failed", slog.String("topic", s.cfg.Topic), slog.Any("error", err))

		return
	}
	s.logger.Info("MQTT subscribed", slog.String("topic", s.cfg.Topic))
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()
	ctx, logger := deliverycontext.WithScope(ctx, uuid.New().String(), s.logger.With(slog.String("topic", msg.Topic())))

	touristID, err := s.matcher.touristID(msg.Topic())
	if err != nil {
		logger.Warn("Dropping location message", slog.Any("error", err))

		return
	}

	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		logger.Warn("Invalid location message", slog.Any("error", err))

		return
	}
	if err := s.validate.Struct(&raw); err != nil {
		logger.Warn("Invalid location message", slog.Any("error", err))

		return
	}

	in := usecase.LocationUpdateInput{
		TouristID:  touristID,
		Coordinate: entity.Coordinate{Latitude: *raw.Latitude, Longitude: *raw.Longitude},
		Accuracy:   raw.Accuracy,
		Speed:      raw.Speed,
		Heading:    raw.Heading,
	}
	if raw.Timestamp > 0 {
		in.Timestamp = unixSeconds(raw.Timestamp)
	}

	result, err := s.coordinatorUC.OnLocationUpdate(ctx, in)
	switch {
	case err == nil:
	case errors.Is(err, domainerrors.ErrStaleLocation):
		// QoS 1 redelivers, so duplicates are expected.
		logger.Debug("Stale location ignored", slog.String("tourist_id", touristID.String()))

		return
	case errors.Is(err, domainerrors.ErrValidation), errors.Is(err, domainerrors.ErrNotFound):
		logger.Warn("Location update rejected", slog.String("tourist_id", touristID.String()), slog.Any("error", err))

		return
	default:
		logger.Error("Location update failed", slog.String("tourist_id", touristID.String()), slog.Any("error", err))

		return
	}

	if result.TriggeredIncident != nil {
		logger.Info("Location update raised incident",
			slog.String("tourist_id", touristID.String()),
			slog.String("incident_id", result.TriggeredIncident.ID.String()))
	}
}

func (s *LocationSubscriber) stop(context.Context) error {
	s.logger.Info("Disconnecting from MQTT broker")
	close(s.done)
	s.client.Disconnect(disconnectWait)

	return nil
}

func unixSeconds(seconds float64) time.Time {
	return time.UnixMilli(int64(math.Round(seconds * 1000))).UTC()
}
