package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/exercise-tracker/internal/errs"
	"github.com/fitrack/exercise-tracker/internal/server"
)

// rateLimitWindow is the fixed window the per-client request budget
// applies to.
const rateLimitWindow = time.Minute

// RateLimitMiddleware enforces a fixed-window request budget per client
// IP, backed by Redis so the budget holds across replicas. Without a
// Redis client or a configured budget it is a pass-through.
type RateLimitMiddleware struct {
	server *server.Server
}

// NewRateLimitMiddleware constructs a RateLimitMiddleware.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{server: s}
}

// Limit returns the enforcement middleware. The counter for each client
// and window is INCRed on every request and expires with the window; a
// Redis failure fails open so the store outage does not take the API
// down with it.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	limit := r.server.Config.Redis.RateLimitPerMinute

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r.server.Redis == nil || limit <= 0 {
				return next(c)
			}

			ctx := c.Request().Context()
			window := time.Now().Unix() / int64(rateLimitWindow.Seconds())
			key := fmt.Sprintf("ratelimit:%s:%d", c.RealIP(), window)

			count, err := r.server.Redis.Incr(ctx, key).Result()
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if count == 1 {
				r.server.Redis.Expire(ctx, key, rateLimitWindow)
			}

			if count > int64(limit) {
				r.RecordRateLimitHit(c.Path())
				return errs.NewTooManyRequestsError("Too many requests, slow down")
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit emits a telemetry event for a rejected request.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
