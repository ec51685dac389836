package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"tourguard/internal/domain/entity"
	"tourguard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpBroadcaster publishes events to a RabbitMQ topic exchange. The routing
// key is "<topic>.<event>", so consumers can bind to "alerts.*" and the like.
type amqpBroadcaster struct {
	conn     *amqp.Connection
	exchange string
	logger   *slog.Logger

	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
	ch *amqp.Channel
}

// NewAMQPBroadcaster dials the broker and declares the exchange
func NewAMQPBroadcaster(url, exchange string, logger *slog.Logger) (service.Broadcaster, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to amqp broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open amqp channel")
	}

	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	logger.Info("AMQP broadcaster initialized", slog.String("exchange", exchange))

	return &amqpBroadcaster{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// RoutingKey returns the key an event is published under.
func RoutingKey(event *entity.BroadcastEvent) string {
	return event.Topic + "." + event.Event
}

func (b *amqpBroadcaster) Publish(ctx context.Context, event *entity.BroadcastEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	err = b.ch.PublishWithContext(ctx,
		b.exchange,        // exchange
		RoutingKey(event), // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now().UTC(),
			Headers:      headers,
			Body:         body,
		})
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s", RoutingKey(event))
	}

	return nil
}

func (b *amqpBroadcaster) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var chErr error
	if b.ch != nil {
		chErr = b.ch.Close()
	}
	if err := b.conn.Close(); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(chErr)
}
