package middleware

import (
	"log/slog"
	"net/http"

	"pickup-scheduler/internal/handler/httperr"
	"pickup-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLogLines = 12

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

// logServerErrors records the cause chain of 5xx responses, which clients only see as a generic message.
func logServerErrors(c *gin.Context) {
	for _, e := range c.Errors {
		resp, ok := e.Meta.(httperr.Response)
		if !ok || resp.Status < http.StatusInternalServerError {
			continue
		}
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c),
			"status", resp.Status,
			"error", e.Err.Error(),
			"stack", errs.ExtractStackLines(e.Err, stackLogLines))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path,
					"request_id", GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
