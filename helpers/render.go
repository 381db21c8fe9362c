package helpers

import (
	"funhub/models"

	"github.com/gofiber/fiber/v2"
)

// PlayerJSON is the wire shape for a player row. Models are never marshalled
// directly, so gorm bookkeeping columns stay off the API.
func PlayerJSON(p models.Player) fiber.Map {
	return fiber.Map{
		"id":             p.ID,
		"device_id":      p.DeviceID,
		"display_name":   p.DisplayName,
		"account_id":     p.AccountID,
		"local_credits":  p.LocalCredits,
		"last_active_at": p.LastActiveAt,
		"created_at":     p.CreatedAt,
		"updated_at":     p.UpdatedAt,
	}
}

// AccountJSON is the wire shape for an account row.
func AccountJSON(a models.Account) fiber.Map {
	return fiber.Map{
		"id":           a.ID,
		"email":        a.Email,
		"display_name": a.DisplayName,
		"credits":      a.Credits,
		"is_verified":  a.IsVerified,
		"created_at":   a.CreatedAt,
		"updated_at":   a.UpdatedAt,
	}
}
