// Package api is the tourist and authority facing HTTP API.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"tourguard/config"
	"tourguard/internal/delivery"
	apimiddleware "tourguard/internal/delivery/api/middleware"
	"tourguard/internal/delivery/api/router"
	"tourguard/internal/delivery/api/validator"
	deliverycontext "tourguard/internal/delivery/context"
	"tourguard/internal/delivery/middleware"
	"tourguard/internal/domain/lifecycle"
	"tourguard/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	hostPort string
	h2       *http2.Server
	logger   *slog.Logger
	echo     *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the API server: request scope, access log, CORS and body
// limit first, then the routes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg

	e := NewEcho(cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
		h2:       &http2.Server{IdleTimeout: cfg.HTTP.Timeouts.IdleTimeout},
		logger:   params.Logger,
		echo:     e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho returns an echo instance with the API middleware chain, error
// handler and validator installed but no routes.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover must be outermost so panics in later middleware are caught.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID, "Retry-After"},
	}))
	if limit := cfg.HTTP.MaxRequestBodySize; limit != "" {
		e.Use(echomiddleware.BodyLimit(limit))
	}

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func (s *apiServer) Serve(_ context.Context) error {
	s.logger.Info("Starting tourguard API", slog.String("host_port", s.hostPort))
	if err := s.echo.StartH2CServer(s.hostPort, s.h2); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down tourguard API")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
