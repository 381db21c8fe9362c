package players

import (
	"funhub/database"
	"funhub/helpers"
	"funhub/models"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	DeviceID    string `json:"device_id"`
	DisplayName string `json:"display_name"`
}

// RegisterHandler upserts the player row for a device. Calling it again for a
// known device refreshes the display name and last-active.
func RegisterHandler(playersSvc *services.Players) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if len(req.DeviceID) < 3 || len(req.DeviceID) > 255 {
			return helpers.JSONError(c, "INVALID_DEVICE_ID")
		}
		if len(req.DisplayName) > 64 {
			return helpers.JSONError(c, "DISPLAY_NAME_TOO_LONG")
		}

		player, err := playersSvc.GetOrCreate(req.DeviceID, req.DisplayName)
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		resp := fiber.Map{
			"player":  helpers.PlayerJSON(*player),
			"account": nil,
		}
		if player.AccountID != nil {
			var account models.Account
			if err := database.DB.First(&account, *player.AccountID).Error; err == nil {
				resp["account"] = helpers.AccountJSON(account)
			}
		}
		return c.JSON(resp)
	}
}
