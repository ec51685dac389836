package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourguard/config"
	deliverycontext "tourguard/internal/delivery/context"
	"tourguard/internal/domain/constants"
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	mockUC "tourguard/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, worker *config.WorkerConfig) (*PushHandler, *mockUC.MockAlertUsecase) {
	t.Helper()

	alertUC := mockUC.NewMockAlertUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:  &config.Config{Worker: worker},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		AlertUC: alertUC,
	})

	return h, alertUC
}

func pushBody(t *testing.T, topic, event string, alert entity.Alert, attrs map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(entity.BroadcastEvent{
		Topic:   topic,
		Event:   event,
		Payload: alert,
	})
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/tourguard-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func serve(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func failedAlert(attempts int) entity.Alert {
	return entity.Alert{
		ID:         uuid.New(),
		IncidentID: uuid.New(),
		Channel:    entity.ChannelPush,
		Status:     entity.AlertStatusFailed,
		Attempts:   attempts,
	}
}

func TestHandlePush_RetriesFailedAlert(t *testing.T) {
	h, alertUC := newTestHandler(t, &config.WorkerConfig{MaxRetryAttempts: 3})
	alert := failedAlert(1)

	var gotRequestID string
	alertUC.EXPECT().Retry(mock.Anything, alert.ID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
			gotRequestID = deliverycontext.GetRequestIDFromContext(ctx)
			sent := alert
			sent.Status = entity.AlertStatusSent
			sent.Attempts = 2

			return &sent, nil
		})

	rec := serve(h, pushBody(t, constants.TopicAlerts, constants.EventAlertFailed, alert, map[string]string{"request_id": "req-42"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", gotRequestID)
}

func TestHandlePush_IgnoresOtherEvents(t *testing.T) {
	h, _ := newTestHandler(t, &config.WorkerConfig{MaxRetryAttempts: 3})

	tests := []struct {
		name  string
		topic string
		event string
	}{
		{name: "alert sent", topic: constants.TopicAlerts, event: constants.EventAlertSent},
		{name: "incident created", topic: constants.TopicIncidents, event: constants.EventIncidentCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, pushBody(t, tt.topic, tt.event, failedAlert(1), nil), nil)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestHandlePush_GivesUpAfterMaxAttempts(t *testing.T) {
	h, _ := newTestHandler(t, &config.WorkerConfig{MaxRetryAttempts: 3})

	rec := serve(h, pushBody(t, constants.TopicAlerts, constants.EventAlertFailed, failedAlert(3), nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RetryErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "already retried", err: domainerrors.ErrIllegalTransition.WithDetails("alert is sent"), wantCode: http.StatusOK},
		{name: "concurrent retry", err: domainerrors.ErrConcurrentModification, wantCode: http.StatusOK},
		{name: "alert deleted", err: domainerrors.ErrAlertNotFound, wantCode: http.StatusOK},
		{name: "storage failure", err: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable},
		{name: "persistence error", err: domainerrors.NewPersistenceError(errors.New("timeout"), "alerts"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, alertUC := newTestHandler(t, &config.WorkerConfig{MaxRetryAttempts: 3})
			alert := failedAlert(1)
			alertUC.EXPECT().Retry(mock.Anything, alert.ID).Return(nil, tt.err)

			rec := serve(h, pushBody(t, constants.TopicAlerts, constants.EventAlertFailed, alert, nil), nil)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	h, _ := newTestHandler(t, &config.WorkerConfig{MaxRetryAttempts: 3})

	var notBase64 PubSubMessage
	notBase64.Message.Data = "%%%"
	notBase64Body, err := json.Marshal(notBase64)
	require.NoError(t, err)

	var notJSON PubSubMessage
	notJSON.Message.Data = base64.StdEncoding.EncodeToString([]byte("not json"))
	notJSONBody, err := json.Marshal(notJSON)
	require.NoError(t, err)

	tests := []struct {
		name string
		body []byte
	}{
		{name: "invalid envelope", body: []byte("{")},
		{name: "invalid base64", body: notBase64Body},
		{name: "invalid event", body: notJSONBody},
		{name: "missing alert id", body: pushBody(t, constants.TopicAlerts, constants.EventAlertFailed, entity.Alert{Attempts: 1}, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesToken(t *testing.T) {
	h, alertUC := newTestHandler(t, &config.WorkerConfig{
		MaxRetryAttempts: 3,
		VerifyPushAuth:   true,
		PushAudience:     "https://worker.example.com/push",
	})

	var gotAudience string
	h.verify = func(_ context.Context, token, audience string) error {
		gotAudience = audience
		if token != "good" {
			return errors.New("bad token")
		}

		return nil
	}

	alert := failedAlert(1)
	body := pushBody(t, constants.TopicAlerts, constants.EventAlertFailed, alert, nil)

	t.Run("missing header", func(t *testing.T) {
		rec := serve(h, body, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec := serve(h, body, http.Header{"Authorization": {"Basic good"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		rec := serve(h, body, http.Header{"Authorization": {"Bearer bad"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		sent := alert
		sent.Status = entity.AlertStatusSent
		alertUC.EXPECT().Retry(mock.Anything, alert.ID).Return(&sent, nil).Once()

		rec := serve(h, body, http.Header{"Authorization": {"Bearer good"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://worker.example.com/push", gotAudience)
	})
}

func TestRetryAlert_CancelledDuringBackoff(t *testing.T) {
	h, _ := newTestHandler(t, &config.WorkerConfig{MaxRetryAttempts: 3, RetryBackoff: time.Hour})
	alert := failedAlert(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.retryAlert(ctx, &alert)
	require.Error(t, err)
	assert.True(t, isRetryableError(err))
}
