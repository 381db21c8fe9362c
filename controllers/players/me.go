package players

import (
	"funhub/database"
	"funhub/helpers"
	"funhub/models"

	"github.com/gofiber/fiber/v2"
)

// Me returns the calling device's player, with the linked account when one
// exists. DeviceAuth has already resolved the player into locals.
func Me(c *fiber.Ctx) error {
	player, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONError(c, "INVALID_DEVICE_SESSION")
	}

	resp := fiber.Map{
		"player":  helpers.PlayerJSON(player),
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
