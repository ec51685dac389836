package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tourguard/config"
	"tourguard/internal/domain/entity"
	"tourguard/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhookSender_SignsPayload(t *testing.T) {
	secret := "gateway-secret"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		timestamp := r.Header.Get(TimestampHeader)
		assert.Equal(t, Sign([]byte(secret), timestamp, body), r.Header.Get(SignatureHeader))

		var payload WebhookPayload
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, entity.ChannelSMS, payload.Channel)
		assert.Equal(t, "+911123456789", payload.Contact)

		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))
	defer server.Close()

	sender := NewWebhookSender(server.URL, secret, 3, time.Millisecond, discardLogger())
	detail, err := sender.Send(context.Background(), "+911123456789", entity.ChannelSMS, "ALERT")

	require.NoError(t, err)
	assert.Equal(t, "202 Accepted queued", detail)
}

func TestWebhookSender_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewWebhookSender(server.URL, "", 3, time.Millisecond, discardLogger())
	_, err := sender.Send(context.Background(), "ops@example.com", entity.ChannelEmail, "ALERT")

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookSender_GivesUp(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
	}{
		{name: "client error is permanent", status: http.StatusBadRequest, wantCalls: 1},
		{name: "server error exhausts attempts", status: http.StatusInternalServerError, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer server.Close()

			sender := NewWebhookSender(server.URL, "", 2, time.Millisecond, discardLogger())
			detail, err := sender.Send(context.Background(), "+911123456789", entity.ChannelCall, "ALERT")

			require.Error(t, err)
			assert.Contains(t, detail, "nope")
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestWebhookSender_StopsOnCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := NewWebhookSender(server.URL, "", 5, time.Hour, discardLogger())
	_, err := sender.Send(ctx, "+911123456789", entity.ChannelSMS, "ALERT")

	require.Error(t, err)
}

type fakeMessaging struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessaging) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/p/messages/1", nil
}

func TestFirebaseSender_Send(t *testing.T) {
	client := &fakeMessaging{}
	sender := &firebaseSender{client: client}

	detail, err := sender.Send(context.Background(), "authority-dispatch", entity.ChannelPush, "ALERT: HIGH")

	require.NoError(t, err)
	assert.Equal(t, "fcm message projects/p/messages/1", detail)
	require.Len(t, client.sent, 1)
	assert.Equal(t, "authority-dispatch", client.sent[0].Topic)
	assert.Equal(t, "ALERT: HIGH", client.sent[0].Notification.Body)
}

func TestFirebaseSender_Failure(t *testing.T) {
	sender := &firebaseSender{client: &fakeMessaging{err: errors.New("unavailable")}}

	_, err := sender.Send(context.Background(), "authority-dispatch", entity.ChannelPush, "ALERT")

	assert.ErrorContains(t, err, "failed to send notification")
}

func TestChannelRouter(t *testing.T) {
	router := NewChannelRouter(map[entity.Channel]ChannelSender{
		entity.ChannelPush: NewSimulatedSender(discardLogger()),
	})

	detail, err := router.Send(context.Background(), "authority-dispatch", entity.ChannelPush, "ALERT")
	require.NoError(t, err)
	assert.Equal(t, "simulated delivery", detail)

	_, err = router.Send(context.Background(), "+911123456789", entity.ChannelSMS, "ALERT")
	assert.ErrorIs(t, err, ErrChannelUnavailable)
}

func TestNewNotifier(t *testing.T) {
	t.Run("simulate covers every channel", func(t *testing.T) {
		notifier, err := NewNotifier(NotifierParams{
			Ctx:    context.Background(),
			Config: &config.Config{Notifier: &config.NotifierConfig{Simulate: true}},
			Logger: discardLogger(),
		})
		require.NoError(t, err)

		for _, channel := range []entity.Channel{entity.ChannelPush, entity.ChannelSMS, entity.ChannelEmail, entity.ChannelCall} {
			_, err := notifier.Send(context.Background(), "c", channel, "m")
			assert.NoError(t, err, channel)
		}
	})

	t.Run("gateways only for configured channels", func(t *testing.T) {
		notifier, err := NewNotifier(NotifierParams{
			Ctx: context.Background(),
			Config: &config.Config{Notifier: &config.NotifierConfig{
				SMSEndpoint: "http://127.0.0.1:1/sms",
				MaxAttempts: 1,
			}},
			Logger: discardLogger(),
		})
		require.NoError(t, err)

		_, err = notifier.Send(context.Background(), "c", entity.ChannelPush, "m")
		assert.ErrorIs(t, err, ErrChannelUnavailable)

		_, err = notifier.Send(context.Background(), "c", entity.ChannelSMS, "m")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrChannelUnavailable)
	})
}
