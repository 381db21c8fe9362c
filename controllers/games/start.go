package games

import (
	"time"

	"funhub/helpers"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
)

type StartGameRequest struct {
	DeviceID string `json:"device_id"`
}

// StartHandler issues the signed session token a client must hand back with
// its score. The token is the only state; nothing is written server-side.
func StartHandler(subs *services.Submissions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req StartGameRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if len(req.DeviceID) < 3 || len(req.DeviceID) > 255 {
			return helpers.JSONError(c, "INVALID_DEVICE_ID")
		}

		token, startedAt, err := subs.StartGame(c.Params("game_slug"), req.DeviceID)
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		return c.JSON(fiber.Map{
			"session_token": token,
			"started_at":    startedAt.Format(time.RFC3339),
		})
	}
}
