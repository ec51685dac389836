// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tourguard/internal/delivery/api/middleware"
	"tourguard/internal/delivery/api/router/handler"
	"tourguard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	LocationHandler *handler.LocationHandler
	IncidentHandler *handler.IncidentHandler
	AlertHandler    *handler.AlertHandler
	GeofenceHandler *handler.GeofenceHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	locationHandler *handler.LocationHandler
	incidentHandler *handler.IncidentHandler
	alertHandler    *handler.AlertHandler
	geofenceHandler *handler.GeofenceHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		locationHandler: params.LocationHandler,
		incidentHandler: params.IncidentHandler,
		alertHandler:    params.AlertHandler,
		geofenceHandler: params.GeofenceHandler,
		authMiddleware:  params.AuthMiddleware,
		rateLimiter:     params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Health)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	anyRole := r.authMiddleware.RequireRole(entity.RoleTourist, entity.RoleAdmin)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	apiV1.POST("/locations", r.locationHandler.UpdateLocation, anyRole, r.rateLimiter.Limit)

	incidentsGroup := apiV1.Group("/incidents", anyRole)
	{
		incidentsGroup.POST("", r.incidentHandler.ReportIncident, r.rateLimiter.Limit)
		incidentsGroup.GET("", r.incidentHandler.ListIncidents)
		incidentsGroup.GET("/:id", r.incidentHandler.GetIncident)
		incidentsGroup.PATCH("/:id", r.incidentHandler.TransitionIncident, adminOnly)
	}

	alertsGroup := apiV1.Group("/alerts", adminOnly)
	{
		alertsGroup.POST("", r.alertHandler.SendAlert)
		alertsGroup.GET("/:id", r.alertHandler.GetAlert)
		alertsGroup.POST("/:id/acknowledge", r.alertHandler.AcknowledgeAlert)
		alertsGroup.POST("/:id/retry", r.alertHandler.RetryAlert)
	}

	geofencesGroup := apiV1.Group("/geofences")
	{
		// Read endpoints for dashboards and maps
		geofencesGroup.GET("/check", r.geofenceHandler.CheckGeofences, anyRole)
		geofencesGroup.GET("/geojson", r.geofenceHandler.GeoJSON, anyRole)

		geofencesGroup.GET("", r.geofenceHandler.ListGeofences, adminOnly)
		geofencesGroup.POST("", r.geofenceHandler.CreateGeofence, adminOnly)
		geofencesGroup.PATCH("/:id", r.geofenceHandler.UpdateGeofence, adminOnly)
		geofencesGroup.DELETE("/:id", r.geofenceHandler.DeactivateGeofence, adminOnly)
	}
}
