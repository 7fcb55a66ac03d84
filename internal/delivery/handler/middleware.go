package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"exercise-tracker/internal/infrastructure"
)

// RateLimit rejects clients that exceed their per-IP budget with 429.
func RateLimit(rl *infrastructure.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
