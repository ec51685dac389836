package notification

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tourguard/internal/domain/entity"
	"tourguard/internal/errors"
)

const (
	// SignatureHeader carries "sha256=<hex hmac>" of timestamp + "." + body.
	SignatureHeader = "X-Tourguard-Signature"
	// TimestampHeader carries the unix time the body was signed at.
	TimestampHeader = "X-Tourguard-Timestamp"

	maxDetailBytes = 512
)

// WebhookPayload is the body sent to SMS, email and voice gateways.
type WebhookPayload struct {
	Channel entity.Channel `json:"channel"`
	Contact string         `json:"contact"`
	Message string         `json:"message"`
	SentAt  time.Time      `json:"sent_at"`
}

// webhookSender posts alerts to an HTTP gateway with linear backoff.
type webhookSender struct {
	endpoint    string
	secret      []byte
	maxAttempts int
	backoff     time.Duration
	http        *http.Client
	logger      *slog.Logger
	now         func() time.Time
}

// NewWebhookSender creates a sender for one gateway endpoint
func NewWebhookSender(endpoint, secret string, maxAttempts int, backoff time.Duration, logger *slog.Logger) ChannelSender {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	return &webhookSender{
		endpoint:    endpoint,
		secret:      []byte(secret),
		maxAttempts: maxAttempts,
		backoff:     backoff,
		http:        &http.Client{},
		logger:      logger,
		now:         time.Now,
	}
}

// Sign returns the signature header value for body signed at timestamp.
func Sign(secret []byte, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)

	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Send posts the alert, retrying network errors and 5xx answers.
func (s *webhookSender) Send(ctx context.Context, contact string, channel entity.Channel, message string) (string, error) {
	body, err := json.Marshal(WebhookPayload{
		Channel: channel,
		Contact: contact,
		Message: message,
		SentAt:  s.now().UTC(),
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		detail, retryable, err := s.post(ctx, body)
		if err == nil {
			return detail, nil
		}
		lastErr = err

		s.logger.Warn("Webhook delivery failed",
			slog.Int("attempt", attempt),
			slog.String("channel", string(channel)),
			slog.String("endpoint", s.endpoint),
			slog.Any("error", err),
		)

		if !retryable || attempt == s.maxAttempts {
			return detail, lastErr
		}

		select {
		case <-ctx.Done():
			return "", errors.Wrap(ctx.Err(), "webhook delivery cancelled")
		case <-time.After(time.Duration(attempt) * s.backoff):
		}
	}

	return "", lastErr
}

func (s *webhookSender) post(ctx context.Context, body []byte) (detail string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", false, errors.WithStack(err)
	}

	timestamp := strconv.FormatInt(s.now().Unix(), 10)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TimestampHeader, timestamp)
	if len(s.secret) > 0 {
		req.Header.Set(SignatureHeader, Sign(s.secret, timestamp, body))
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", ctx.Err() == nil, errors.Wrap(err, "webhook request failed")
	}
	defer resp.Body.Close()

	answer, _ := io.ReadAll(io.LimitReader(resp.Body, maxDetailBytes))
	detail = fmt.Sprintf("%s %s", resp.Status, bytes.TrimSpace(answer))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return detail, false, nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return detail, true, errors.Errorf("gateway returned %d", resp.StatusCode)
	default:
		return detail, false, errors.Errorf("gateway rejected alert with %d", resp.StatusCode)
	}
}
