package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"pickup-scheduler/internal/handler/httperr"
	"pickup-scheduler/internal/pkg/config"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
	burst    int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: time.Minute / time.Duration(perMinute),
		burst:    burst,
	}
}

func (r *RateLimiter) limiter(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.limiters[ip]
	if !ok {
		l = rate.NewLimiter(rate.Every(r.interval), r.burst)
		r.limiters[ip] = l
	}
	return l
}

func (r *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.limiter(ip).Allow() {
			slog.Warn("Rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			httperr.AbortRetryable(c, http.StatusTooManyRequests, errRateLimited, "Too many requests. Please try again later.", r.interval)
			return
		}
		c.Next()
	}
}
