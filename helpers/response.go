package helpers

import (
	"errors"
	"log"

	"funhub/services"

	"github.com/gofiber/fiber/v2"
)

func JSONError(c *fiber.Ctx, message string) error {
	return JSONErrorStatus(c, fiber.StatusBadRequest, message)
}

func JSONErrorStatus(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// ServiceError renders a services.Error with its own status and code.
// Anything else is an unexpected failure and renders as a 500.
func ServiceError(c *fiber.Ctx, err error) error {
	var serr *services.Error
	if errors.As(err, &serr) {
		if serr.Reason != "" {
			log.Printf("⚠️  %s %s: %s (%s)", c.Method(), c.Path(), serr.Code, serr.Reason)
		}
		return JSONErrorStatus(c, serr.Status, serr.Code)
	}
	log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	return JSONErrorStatus(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
}
