package leaderboard

import (
	"time"

	"funhub/database"
	"funhub/helpers"
	"funhub/models"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
)

// MeHandler returns the calling device's best score and rank for a game.
func MeHandler(boards *services.Leaderboards) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameSlug := c.Params("game_slug")
		if !services.IsValidGame(gameSlug) {
			return helpers.JSONError(c, "UNSUPPORTED_GAME")
		}

		deviceID := c.Query("device_id")
		if deviceID == "" {
			return helpers.JSONError(c, "DEVICE_ID_REQUIRED")
		}

		gameID, err := services.GameIDBySlug(database.DB, gameSlug)
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		var player models.Player
		if err := database.DB.Where("device_id = ?", deviceID).First(&player).Error; err != nil {
			return c.JSON(fiber.Map{
				"has_score": false,
				"message":   "No scores found for this player",
			})
		}

		best, err := boards.BestFor(gameID, player.ID)
		if err != nil {
			return helpers.ServiceError(c, err)
		}
		if best == nil {
			return c.JSON(fiber.Map{
				"has_score": false,
				"message":   "No scores found for this player",
			})
		}

		rank, err := boards.RankOf(gameID, best.Score)
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		return c.JSON(fiber.Map{
			"has_score":    true,
			"rank":         rank,
			"score":        best.Score,
			"display_name": player.DisplayName,
			"achieved_at":  best.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
}
