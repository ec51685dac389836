package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tourguard/config"
	deliverycontext "tourguard/internal/delivery/context"
	"tourguard/internal/domain/constants"
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// alertEvent is a broadcast event whose payload is an alert.
type alertEvent struct {
	RequestID string       `json:"request_id,omitempty"`
	Topic     string       `json:"topic"`
	Event     string       `json:"event"`
	Payload   entity.Alert `json:"payload"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenVerifier validates the bearer token of a push request.
type tokenVerifier func(ctx context.Context, token, audience string) error

// PushHandler retries failed alerts delivered as Pub/Sub push messages.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	maxAttempts    int
	backoff        time.Duration
	logger         *slog.Logger
	alertUC        usecase.AlertUsecase
	verify         tokenVerifier
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	AlertUC usecase.AlertUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		maxAttempts: 5,
		logger:      params.Logger,
		alertUC:     params.AlertUC,
		verify:      verifyGoogleToken,
	}
	if w := params.Config.Worker; w != nil {
		h.verifyPushAuth = w.VerifyPushAuth
		h.audience = w.PushAudience
		h.backoff = w.RetryBackoff
		if w.MaxRetryAttempts > 0 {
			h.maxAttempts = w.MaxRetryAttempts
		}
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event alertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse broadcast event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx, reqLogger := deliverycontext.WithScope(ctx, requestID, h.logger)

	// Every topic shares the subscription; only failed alerts are ours.
	if event.Topic != constants.TopicAlerts || event.Event != constants.EventAlertFailed {
		reqLogger.Debug("[Worker] Ignoring event",
			slog.String("topic", event.Topic),
			slog.String("event", event.Event))

		return c.NoContent(http.StatusOK)
	}

	alert := event.Payload
	if alert.ID == uuid.Nil {
		reqLogger.Error("[Worker] alert_failed event without alert id")

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.retryAlert(ctx, &alert); err != nil {
		reqLogger.Error("[Worker] Failed to retry alert",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver, 200 drops the message.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) retryAlert(ctx context.Context, alert *entity.Alert) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if alert.Attempts >= h.maxAttempts {
		logger.Warn("[Worker] Giving up on alert",
			slog.String("alert_id", alert.ID.String()),
			slog.String("incident_id", alert.IncidentID.String()),
			slog.Int("attempts", alert.Attempts))

		return nil
	}

	if wait := time.Duration(alert.Attempts) * h.backoff; wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()

			return newRetryableError(errors.WithStack(ctx.Err()))
		case <-timer.C:
		}
	}

	next, err := h.alertUC.Retry(ctx, alert.ID)
	if err != nil {
		// Business rejections mean the alert moved on; storage failures are worth another try.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return errors.WithStack(err)
		}

		return newRetryableError(err)
	}

	logger.Info("[Worker] Alert retried",
		slog.String("alert_id", next.ID.String()),
		slog.String("status", string(next.Status)),
		slog.Int("attempts", next.Attempts))

	return nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *alertEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) verifyPushToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	return h.verify(req.Context(), token, audience)
}

// verifyGoogleToken verifies the OIDC token attached to Google Pub/Sub push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyGoogleToken(ctx context.Context, token, audience string) error {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
