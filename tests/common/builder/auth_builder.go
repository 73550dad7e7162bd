//go:build unit || e2e

package builder

import (
	reqdto "pickup-scheduler/internal/handler/dto/request"
)

// DefaultAdminPassword matches the admin password of config.NewTestConfig.
const DefaultAdminPassword = "test-admin"

type AuthBuilder struct {
	password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{password: DefaultAdminPassword}
}

func (a *AuthBuilder) WithPassword(p string) *AuthBuilder {
	a.password = p
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Password: a.password}
}
