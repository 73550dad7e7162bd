package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"pickup-scheduler/internal/handler/httperr"
	"pickup-scheduler/internal/pkg/cookie"
	"pickup-scheduler/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSubjectKey = "subject"
	ctxRoleKey    = "role"
)

var errMissingToken = errors.New("missing access token")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the admin token from the session cookie or an Authorization: Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		subject, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxSubjectKey, subject)
		c.Set(ctxRoleKey, role)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAdminToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func GetRole(c *gin.Context) string {
	return c.GetString(ctxRoleKey)
}
