package commands

import (
	"context"
	"time"

	"pickup-scheduler/internal/pkg/errs"
	"pickup-scheduler/internal/pkg/jwt"
	"pickup-scheduler/internal/pkg/password"
)

const adminSubject = "admin"

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, plain string) (*LoginResult, error)
}

type authCommandsImpl struct {
	passwordHash string
	jwtService   *jwt.Service
}

// NewAuthCommands hashes the configured admin password once; a bcrypt value is used as is.
func NewAuthCommands(adminPassword string, jwtService *jwt.Service) (AuthCommands, error) {
	hash, err := password.Hash(adminPassword)
	if err != nil {
		return nil, errs.Wrap(err, "hash admin password")
	}
	return &authCommandsImpl{
		passwordHash: hash,
		jwtService:   jwtService,
	}, nil
}

func (a *authCommandsImpl) Login(_ context.Context, plain string) (*LoginResult, error) {
	if plain == "" {
		return nil, errs.Wrap(ErrValidation, "password is required")
	}

	if err := password.Verify(a.passwordHash, plain); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, expiresAt, err := a.jwtService.GenerateToken(adminSubject, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}
