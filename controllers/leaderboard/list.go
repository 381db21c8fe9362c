package leaderboard

import (
	"funhub/database"
	"funhub/helpers"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
)

// ListHandler returns the top entries for a game over a period.
func ListHandler(boards *services.Leaderboards) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameSlug := c.Params("game_slug")
		if !services.IsValidGame(gameSlug) {
			return helpers.JSONError(c, "UNSUPPORTED_GAME")
		}

		period := c.Query("period", "alltime")
		switch period {
		case "daily", "weekly", "alltime":
		default:
			return helpers.JSONError(c, "INVALID_PERIOD")
		}

		gameID, err := services.GameIDBySlug(database.DB, gameSlug)
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		entries, err := boards.List(gameID, period, c.QueryInt("limit", 100))
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		return c.JSON(fiber.Map{
			"game":    gameSlug,
			"period":  period,
			"entries": entries,
		})
	}
}
