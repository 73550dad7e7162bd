//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"pickup-scheduler/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	t.Run("success: round trips subject and role", func(t *testing.T) {
		token, expiresAt, err := svc.GenerateToken("admin", jwt.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
		assert.Equal(t, jwt.Issuer, claims.Issuer)
		assert.NotEmpty(t, claims.ID)
		assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
	})

	t.Run("error: expired token", func(t *testing.T) {
		token := sign(t, "test-secret", gojwt.SigningMethodHS256, jwt.Issuer, time.Now().Add(-time.Minute))
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		token := sign(t, "other-secret", gojwt.SigningMethodHS256, jwt.Issuer, time.Now().Add(time.Hour))
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: foreign issuer", func(t *testing.T) {
		token := sign(t, "test-secret", gojwt.SigningMethodHS256, "someone-else", time.Now().Add(time.Hour))
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: other hmac algorithm", func(t *testing.T) {
		token := sign(t, "test-secret", gojwt.SigningMethodHS512, jwt.Issuer, time.Now().Add(time.Hour))
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func sign(t *testing.T, secret string, method gojwt.SigningMethod, issuer string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.Claims{
		Role: jwt.RoleAdmin,
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "admin",
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
		},
	}
	s, err := gojwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}
