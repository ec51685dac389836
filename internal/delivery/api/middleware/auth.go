package middleware

import (
	"strings"

	"tourguard/internal/delivery/api/response"
	deliverycontext "tourguard/internal/delivery/context"
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// AuthMiddleware authenticates bearer tokens and enforces roles.
type AuthMiddleware struct {
	identity service.IdentityProvider
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate verifies the bearer token and stores the actor on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		actor, err := m.identity.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
		}

		c.Set(actorContextKey, *actor)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithActor(c.Request().Context(), *actor)))

		return next(c)
	}
}

// RequireRole rejects callers without one of roles. Use after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Missing credentials")
			}
			if !allowed.Contains(actor.Role) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied")
			}

			return next(c)
		}
	}
}

// GetActor returns the actor stored by Authenticate, looking at the request
// context when the echo store is empty.
func GetActor(c echo.Context) (entity.Actor, bool) {
	if actor, ok := c.Get(actorContextKey).(entity.Actor); ok {
		return actor, true
	}

	return deliverycontext.ActorFromContext(c.Request().Context())
}
