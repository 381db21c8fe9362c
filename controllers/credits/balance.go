package credits

import (
	"funhub/database"
	"funhub/helpers"
	"funhub/models"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
)

// resolveAccountID prefers the verified bearer token over the player's stored
// link, so a fresh login works even before the link row settles.
func resolveAccountID(c *fiber.Ctx, player models.Player) *uint {
	if id, ok := c.Locals("account_id").(uint); ok {
		return &id
	}
	return player.AccountID
}

// Balance reports the caller's spendable credits: account credits when the
// device is linked to one, device-local credits otherwise.
func Balance(c *fiber.Ctx) error {
	player, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONError(c, "INVALID_DEVICE_SESSION")
	}

	if accountID := resolveAccountID(c, player); accountID != nil {
		var account models.Account
		if err := database.DB.First(&account, *accountID).Error; err != nil {
			return helpers.ServiceError(c, services.ErrAccountNotFound)
		}
		return c.JSON(fiber.Map{
			"credits": account.Credits,
			"source":  "account",
		})
	}

	return c.JSON(fiber.Map{
		"credits": player.LocalCredits,
		"source":  "local",
	})
}
