package notification

import (
	"context"
	"fmt"

	"tourguard/internal/domain/entity"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the part of the FCM client used here.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseSender delivers push alerts through FCM. The authority contact is
// an FCM topic that responder devices subscribe to.
type firebaseSender struct {
	client messageSender
}

// NewFirebaseSender creates the push channel from a service account file
func NewFirebaseSender(ctx context.Context, projectID, credentialsPath string) (ChannelSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseSender{client: client}, nil
}

// Send publishes the alert to the contact topic
func (s *firebaseSender) Send(ctx context.Context, contact string, channel entity.Channel, message string) (string, error) {
	msg := &messaging.Message{
		Topic: contact,
		Notification: &messaging.Notification{
			Title: "Tourist safety alert",
			Body:  message,
		},
		Data: map[string]string{
			"channel": string(channel),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := s.client.Send(ctx, msg)
	if err != nil {
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			return "fcm rejected the topic", fmt.Errorf("failed to send notification: %w", err)
		}

		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return "fcm message " + messageID, nil
}
