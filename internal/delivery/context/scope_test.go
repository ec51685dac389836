package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithScope_TagsLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx, logger := WithScope(context.Background(), "req-1", base)
	logger.Info("scoped")

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, base))
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestWithActor(t *testing.T) {
	var buf bytes.Buffer
	ctx, _ := WithScope(context.Background(), "req-2", slog.New(slog.NewTextHandler(&buf, nil)))

	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	ctx = WithActor(ctx, actor)

	got, ok := ActorFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, actor, got)

	GetLoggerOrDefault(ctx, nil).Info("acting")
	assert.Contains(t, buf.String(), "user_id="+actor.UserID.String())
	assert.Contains(t, buf.String(), "role=admin")

	_, ok = ActorFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("from echo context", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		SetRequestID(c, "req-3")
		assert.Equal(t, "req-3", GetRequestID(c))
	})

	t.Run("from request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "req-4"))
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "req-4", GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		_, err := uuid.Parse(GetRequestID(c))
		assert.NoError(t, err)
	})
}
