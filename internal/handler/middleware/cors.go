package middleware

import (
	"log/slog"
	"slices"

	"pickup-scheduler/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// exposedHeaders are always readable by browser clients.
var exposedHeaders = []string{"Retry-After", requestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range exposedHeaders {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	logger.Info("cors configured", "origins", cfg.AllowOrigins, "credentials", cfg.AllowCredentials)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
