package auth

import (
	"testing"
	"time"

	"tourguard/config"
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret: "test_secret_key_very_long_for_testing",
			Issuer:    "tourguard",
			AccessTTL: time.Hour,
		},
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	provider, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleTourist}
	token, err := provider.Issue(actor, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	verified, err := provider.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, actor, *verified)
}

func TestJWTService_Verify_Rejects(t *testing.T) {
	cfg := newTestConfig()
	provider, err := NewJWTService(cfg)
	require.NoError(t, err)

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return token
	}
	valid := func() service.Claims {
		return service.Claims{
			Role: entity.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uuid.NewString(),
				Issuer:    "tourguard",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}
	secret := []byte(cfg.Auth.JWTSecret)

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := valid()
	noExpiry.ExpiresAt = nil

	otherIssuer := valid()
	otherIssuer.Issuer = "someone-else"

	badSubject := valid()
	badSubject.Subject = "not-a-uuid"

	badRole := valid()
	badRole.Role = "merchant"

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: sign(valid(), jwt.SigningMethodHS256, []byte("another-secret"))},
		{name: "wrong algorithm", token: sign(valid(), jwt.SigningMethodHS512, secret)},
		{name: "expired", token: sign(expired, jwt.SigningMethodHS256, secret)},
		{name: "no expiry", token: sign(noExpiry, jwt.SigningMethodHS256, secret)},
		{name: "other issuer", token: sign(otherIssuer, jwt.SigningMethodHS256, secret)},
		{name: "subject is not a uuid", token: sign(badSubject, jwt.SigningMethodHS256, secret)},
		{name: "unknown role", token: sign(badRole, jwt.SigningMethodHS256, secret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor, err := provider.Verify(tt.token)
			assert.Nil(t, actor)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}

func TestJWTService_IssueRejectsUnknownRole(t *testing.T) {
	provider, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = provider.Issue(entity.Actor{UserID: uuid.New(), Role: "merchant"}, time.Minute)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.JWTSecret = ""

	provider, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
