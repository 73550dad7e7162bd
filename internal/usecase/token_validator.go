package usecase

import (
	"errors"

	"pickup-scheduler/internal/pkg/jwt"
)

var ErrInsufficientRole = errors.New("insufficient role")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (subject string, role string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	if claims.Role != jwt.RoleAdmin {
		return "", "", ErrInsufficientRole
	}

	return claims.Subject, claims.Role, nil
}
