package middlewares

import (
	"time"

	"funhub/database"
	"funhub/helpers"
	"funhub/models"

	"github.com/gofiber/fiber/v2"
)

// DeviceAuth resolves the X-Device-ID header into a player and stores it in
// locals. Every hit refreshes the player's last-active timestamp.
func DeviceAuth(c *fiber.Ctx) error {
	deviceID := c.Get("X-Device-ID")
	if deviceID == "" {
		return helpers.JSONError(c, "DEVICE_ID_REQUIRED")
	}

	var player models.Player
	if err := database.DB.Where("device_id = ?", deviceID).First(&player).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "PLAYER_NOT_FOUND")
	}

	player.LastActiveAt = time.Now().UTC()
	database.DB.Model(&player).Update("last_active_at", player.LastActiveAt)

	c.Locals("player", player)
	return c.Next()
}
