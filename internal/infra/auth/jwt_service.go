// Package auth provides the bearer token IdentityProvider.
package auth

import (
	"time"

	"tourguard/config"
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/domain/service"
	"tourguard/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService verifies and issues HS256 tokens carrying the caller's role.
type jwtService struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.IdentityProvider, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    []byte(cfg.Auth.JWTSecret),
		issuer:    cfg.Auth.Issuer,
		accessTTL: cfg.Auth.AccessTTL,
		now:       time.Now,
	}, nil
}

// Verify parses a token and returns the actor it names.
func (s *jwtService) Verify(tokenString string) (*entity.Actor, error) {
	claims := &service.Claims{}
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, options...)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid token subject")
	}
	if !claims.Role.IsValid() {
		return nil, domainerrors.ErrUnauthorized.WithDetailsf("unknown role %q", claims.Role)
	}

	return &entity.Actor{UserID: userID, Role: claims.Role}, nil
}

// Issue signs a token for actor. A non-positive ttl uses the configured one.
func (s *jwtService) Issue(actor entity.Actor, ttl time.Duration) (string, error) {
	if !actor.Role.IsValid() {
		return "", errors.Errorf("unknown role %q", actor.Role)
	}
	if ttl <= 0 {
		ttl = s.accessTTL
	}

	now := s.now()
	claims := service.Claims{
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
