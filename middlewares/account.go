package middlewares

import (
	"strings"

	"funhub/helpers"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
)

// OptionalAccountAuth resolves a Bearer token into an account id local. A
// missing header is fine, the route falls back to device-local state; a
// malformed or expired token is rejected outright.
func OptionalAccountAuth(tokens *services.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" {
			return c.Next()
		}

		if len(auth) < 8 || !strings.EqualFold(auth[:7], "bearer ") {
			return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_AUTHORIZATION_HEADER")
		}

		accountID, err := tokens.ParseAccountSession(strings.TrimSpace(auth[7:]))
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		c.Locals("account_id", accountID)
		return c.Next()
	}
}
