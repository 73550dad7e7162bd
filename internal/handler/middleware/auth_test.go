//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"pickup-scheduler/internal/handler/middleware"
	"pickup-scheduler/internal/pkg/config"
	"pickup-scheduler/internal/pkg/cookie"
	"pickup-scheduler/internal/usecase"
	"pickup-scheduler/tests/common/authtest"
	"pickup-scheduler/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtHelper *authtest.JWTHelper
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	s.jwtHelper = authtest.NewJWTHelper(cfg.JWT)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtHelper.Service(s.T())))
	s.router = gin.New()
	s.router.GET("/api/admin/appointments", auth.RequireAuth(), func(c *gin.Context) {
		subject, _ := middleware.GetSubject(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject, "role": c.GetString("role")})
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	url := "/api/admin/appointments"

	s.Run("success: bearer token", func() {
		token := s.jwtHelper.GenerateToken(s.T(), "admin")

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("admin", body["subject"])
		s.Equal("admin", body["role"])
	})

	s.Run("success: session cookie", func() {
		token := s.jwtHelper.GenerateToken(s.T(), "admin")
		cookies := []*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: token}}

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, url, nil, cookies, "")

		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("error: no token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: expired token", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T())
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: token signed with another secret", func() {
		other := authtest.NewJWTHelper(config.JWTConfig{Secret: "other-secret", Duration: "1h"})
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, other.GenerateToken(s.T(), "admin"))
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: non-admin role", func() {
		token := s.jwtHelper.GenerateToken(s.T(), "viewer")
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
