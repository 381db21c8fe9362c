package credits

import (
	"encoding/json"

	"funhub/database"
	"funhub/helpers"
	"funhub/models"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type UseCreditsRequest struct {
	Amount int    `json:"amount"`
	Type   string `json:"type"`
	Game   string `json:"game"`
}

// Use spends credits from whichever balance the caller has, account first.
// Each spend leaves a credit_transactions row for the audit trail.
func Use(c *fiber.Ctx) error {
	var req UseCreditsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.Amount <= 0 {
		return helpers.JSONError(c, "AMOUNT_MUST_BE_POSITIVE")
	}
	if len(req.Type) < 2 || len(req.Type) > 50 {
		return helpers.JSONError(c, "INVALID_USE_TYPE")
	}

	player, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONError(c, "INVALID_DEVICE_SESSION")
	}

	metadata, _ := json.Marshal(fiber.Map{"type": req.Type, "game": req.Game})

	if accountID := resolveAccountID(c, player); accountID != nil {
		var account models.Account
		if err := database.DB.First(&account, *accountID).Error; err != nil {
			return helpers.ServiceError(c, services.ErrAccountNotFound)
		}
		if account.Credits < req.Amount {
			return helpers.ServiceError(c, services.ErrInsufficientCredits)
		}

		newBalance := account.Credits - req.Amount
		if err := database.DB.Model(&account).Update("credits", newBalance).Error; err != nil {
			return helpers.JSONError(c, "FAILED_TO_USE_CREDITS")
		}
		database.DB.Create(&models.CreditTransaction{
			AccountID: accountID,
			TrxType:   "use",
			Amount:    req.Amount,
			Metadata:  datatypes.JSON(metadata),
		})

		return c.JSON(fiber.Map{
			"credits": newBalance,
			"used":    req.Amount,
			"source":  "account",
		})
	}

	if player.LocalCredits < req.Amount {
		return helpers.ServiceError(c, services.ErrInsufficientCredits)
	}

	newBalance := player.LocalCredits - req.Amount
	if err := database.DB.Model(&player).Update("local_credits", newBalance).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_USE_CREDITS")
	}
	database.DB.Create(&models.CreditTransaction{
		PlayerID: &player.ID,
		TrxType:  "use",
		Amount:   req.Amount,
		Metadata: datatypes.JSON(metadata),
	})

	return c.JSON(fiber.Map{
		"credits": newBalance,
		"used":    req.Amount,
		"source":  "local",
	})
}
