package service

import (
	"time"

	"tourguard/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by bearer tokens.
type Claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// IdentityProvider verifies bearer tokens into actors.
type IdentityProvider interface {
	// Verify returns the actor named by a valid token.
	Verify(token string) (*entity.Actor, error)

	// Issue creates a token for actor, used by the admin CLI and tests.
	Issue(actor entity.Actor, ttl time.Duration) (string, error)
}
