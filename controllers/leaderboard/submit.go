package leaderboard

import (
	"funhub/helpers"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
)

type SubmitScoreRequest struct {
	Score        int    `json:"score"`
	SessionToken string `json:"session_token"`
	DisplayName  string `json:"display_name"`
}

// SubmitHandler redeems a session token for one score submission.
func SubmitHandler(subs *services.Submissions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SubmitScoreRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if req.SessionToken == "" {
			return helpers.JSONError(c, "SESSION_TOKEN_REQUIRED")
		}
		if len(req.DisplayName) > 64 {
			return helpers.JSONError(c, "DISPLAY_NAME_TOO_LONG")
		}

		result, err := subs.Submit(c.Params("game_slug"), req.SessionToken, req.Score, req.DisplayName)
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"rank":    result.Rank,
			"message": result.Message,
		})
	}
}
