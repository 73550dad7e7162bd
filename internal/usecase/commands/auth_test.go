//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"pickup-scheduler/internal/pkg/errs"
	"pickup-scheduler/internal/pkg/jwt"
	"pickup-scheduler/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthCommands_Login(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	auth, err := commands.NewAuthCommands("test-admin", jwtService)
	require.NoError(t, err)

	t.Run("success: issues an admin token", func(t *testing.T) {
		before := time.Now()
		result, err := auth.Login(context.Background(), "test-admin")
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
		assert.WithinDuration(t, before.Add(time.Hour), result.ExpiresAt, 5*time.Second)
	})

	t.Run("error: empty password", func(t *testing.T) {
		_, err := auth.Login(context.Background(), "")
		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		_, err := auth.Login(context.Background(), "guess")
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})
}
