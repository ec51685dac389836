// Package worker serves the Pub/Sub push endpoint that retries failed alerts.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"tourguard/config"
	"tourguard/internal/delivery"
	"tourguard/internal/delivery/middleware"
	"tourguard/internal/delivery/worker/handler"
	"tourguard/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// writeSlack is added on top of the longest backoff a push request may sleep.
const writeSlack = 30 * time.Second

type workerServer struct {
	hostPort string
	logger   *slog.Logger
	echo     *echo.Echo
}

// ServerParams holds dependencies for the alert retry worker
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the HTTP server receiving alert_failed push messages.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg
	if cfg.Worker == nil {
		return nil, errors.New("worker configuration is missing")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout
	e.Server.WriteTimeout = pushWriteTimeout(cfg.Worker, cfg.HTTP.Timeouts.WriteTimeout)

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, cfg).Handle)

	maxAttempts := cfg.Worker.MaxRetryAttempts
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":           "ok",
			"maxRetryAttempts": maxAttempts,
		})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.Worker.Port)),
		logger:   params.Logger,
		echo:     e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// pushWriteTimeout keeps the connection open for the longest backoff the
// handler sleeps before retrying. Zero base means no timeout.
func pushWriteTimeout(w *config.WorkerConfig, base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	longest := time.Duration(w.MaxRetryAttempts)*w.RetryBackoff + writeSlack
	if longest > base {
		return longest
	}

	return base
}

func (s *workerServer) Serve(_ context.Context) error {
	s.logger.Info("Starting alert retry worker", slog.String("host_port", s.hostPort))
	if err := s.echo.Start(s.hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down alert retry worker")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
