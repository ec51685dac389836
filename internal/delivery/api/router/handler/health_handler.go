package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"tourguard/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecks maps a dependency name to its probe.
type HealthChecks map[string]func(ctx context.Context) error

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler reports liveness and the state of backing services.
type HealthHandler struct {
	checks HealthChecks
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(checks HealthChecks) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health runs every probe and answers 503 if one fails
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := HealthStatus{Status: "ok", Checks: make(map[string]string, len(names))}
	code := http.StatusOK
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			status.Checks[name] = "unavailable"
			status.Status = "degraded"
			code = http.StatusServiceUnavailable

			continue
		}
		status.Checks[name] = "ok"
	}

	return response.Success(c, code, status)
}
