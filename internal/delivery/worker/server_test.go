package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourguard/config"
	"tourguard/internal/delivery/worker/handler"
	mockUC "tourguard/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestPushWriteTimeout(t *testing.T) {
	w := &config.WorkerConfig{MaxRetryAttempts: 5, RetryBackoff: 2 * time.Second}

	tests := []struct {
		name string
		base time.Duration
		want time.Duration
	}{
		{name: "disabled", base: 0, want: 0},
		{name: "raised to cover backoff", base: 15 * time.Second, want: 40 * time.Second},
		{name: "base already longer", base: time.Minute, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pushWriteTimeout(w, tt.base))
		})
	}
}

func TestNewServer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Worker: &config.WorkerConfig{Port: 8081, MaxRetryAttempts: 3, RetryBackoff: time.Second}}
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:  cfg,
		Logger:  logger,
		AlertUC: mockUC.NewMockAlertUsecase(t),
	})

	d, err := NewServer(ServerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: pushHandler,
	})
	require.NoError(t, err)

	srv, ok := d.(*workerServer)
	require.True(t, ok)
	assert.Equal(t, "0.0.0.0:8081", srv.hostPort)
	assert.Equal(t, 33*time.Second, srv.echo.Server.WriteTimeout)

	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","maxRetryAttempts":3}`, rec.Body.String())

	_, err = NewServer(ServerParams{Lc: fxtest.NewLifecycle(t), Cfg: &config.Config{}, Logger: logger, PushHandler: pushHandler})
	assert.Error(t, err)
}
