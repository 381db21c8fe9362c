package auth

import (
	"errors"
	"strings"
	"time"

	"funhub/database"
	"funhub/helpers"
	"funhub/models"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VerifyOtpRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	DeviceID string `json:"device_id"`
}

// VerifyOtpHandler redeems a one-time code: the code is burned, the account
// is upserted by email, the device's player is linked to it, any device-local
// credits migrate to the account, and a login token comes back.
func VerifyOtpHandler(tokens *services.Tokens, playersSvc *services.Players) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req VerifyOtpRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || len(req.Code) != 6 {
			return helpers.JSONError(c, "INVALID_OR_USED_CODE")
		}
		if len(req.DeviceID) < 3 || len(req.DeviceID) > 255 {
			return helpers.JSONError(c, "INVALID_DEVICE_ID")
		}

		now := time.Now().UTC()

		var otp models.OtpCode
		err := database.DB.
			Where("email = ? AND code = ? AND used_at IS NULL", email, req.Code).
			Order("created_at DESC").
			First(&otp).Error
		if err != nil {
			return helpers.ServiceError(c, services.ErrInvalidOtpCode)
		}
		if otp.ExpiresAt.Before(now) {
			return helpers.ServiceError(c, services.ErrOtpExpired)
		}

		if err := database.DB.Model(&otp).Update("used_at", now).Error; err != nil {
			return helpers.JSONError(c, "FAILED_TO_REDEEM_CODE")
		}

		var account models.Account
		err = database.DB.Where("email = ?", email).First(&account).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			account = models.Account{Email: email, IsVerified: true}
			if err := database.DB.Create(&account).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// Parallel verification for the same email; reuse the row.
					if err := database.DB.Where("email = ?", email).First(&account).Error; err != nil {
						return helpers.JSONError(c, "FAILED_TO_CREATE_ACCOUNT")
					}
				} else {
					return helpers.JSONError(c, "FAILED_TO_CREATE_ACCOUNT")
				}
			}
		} else if err != nil {
			return helpers.ServiceError(c, err)
		}
		if !account.IsVerified {
			database.DB.Model(&account).Update("is_verified", true)
			account.IsVerified = true
		}

		player, err := playersSvc.GetOrCreate(req.DeviceID, "")
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		// Credits earned before login move to the account; the device keeps
		// nothing so they cannot double-spend.
		if player.LocalCredits > 0 {
			account.Credits += player.LocalCredits
			database.DB.Model(&account).Update("credits", account.Credits)
			database.DB.Model(player).Update("local_credits", 0)
			player.LocalCredits = 0
		}

		database.DB.Model(player).Updates(map[string]any{
			"account_id":     account.ID,
			"last_active_at": now,
		})
		player.AccountID = &account.ID

		token, err := tokens.IssueAccountSession(account.ID)
		if err != nil {
			return helpers.ServiceError(c, err)
		}

		return c.JSON(fiber.Map{
			"session_token": token,
			"account":       helpers.AccountJSON(account),
			"player":        helpers.PlayerJSON(*player),
		})
	}
}
