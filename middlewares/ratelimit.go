package middlewares

import (
	"time"

	"funhub/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit applies a fixed-window per-IP limit to one route.
func RateLimit(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return helpers.JSONErrorStatus(c, fiber.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED")
		},
	})
}
