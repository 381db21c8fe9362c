package health

import (
	"funhub/config"

	"github.com/gofiber/fiber/v2"
)

// Handler answers liveness probes.
func Handler(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"version":     cfg.Version,
			"environment": cfg.Environment,
		})
	}
}
