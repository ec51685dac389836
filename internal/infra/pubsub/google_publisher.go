package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tourguard/internal/domain/entity"
	"tourguard/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubBroadcaster implements Broadcaster using Google Cloud Pub/Sub
type googlePubSubBroadcaster struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubBroadcaster creates a Broadcaster publishing to one Pub/Sub topic.
// Subscribers filter on the topic and event attributes.
func NewGooglePubSubBroadcaster(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.Broadcaster, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub broadcaster initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubBroadcaster{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Publish sends the event and waits for the server to accept it
func (b *googlePubSubBroadcaster) Publish(ctx context.Context, event *entity.BroadcastEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := b.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	b.logger.Debug("[GooglePubSub] Event published",
		slog.String("topic", event.Topic),
		slog.String("event", event.Event),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (b *googlePubSubBroadcaster) Close() error {
	if b.publisher != nil {
		b.publisher.Stop()
	}
	if b.client != nil {
		return errors.WithStack(b.client.Close())
	}

	return nil
}
