package auth

import (
	"net/mail"
	"strings"
	"time"

	"funhub/config"
	"funhub/database"
	"funhub/helpers"
	"funhub/models"

	"github.com/gofiber/fiber/v2"
)

const otpTTL = 10 * time.Minute

type RequestOtpRequest struct {
	Email    string `json:"email"`
	DeviceID string `json:"device_id"`
}

// RequestOtpHandler creates a one-time code for an email address. There is no
// mail sender wired up yet, so development mode echoes the code back in
// debug_code for the frontend to display.
func RequestOtpHandler(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RequestOtpRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			return helpers.JSONError(c, "INVALID_EMAIL")
		}
		if len(req.DeviceID) < 3 || len(req.DeviceID) > 255 {
			return helpers.JSONError(c, "INVALID_DEVICE_ID")
		}

		code := helpers.GenerateOtpCode()
		otp := models.OtpCode{
			Email:     email,
			Code:      code,
			DeviceID:  req.DeviceID,
			ExpiresAt: time.Now().UTC().Add(otpTTL),
		}
		if err := database.DB.Create(&otp).Error; err != nil {
			return helpers.JSONError(c, "FAILED_TO_CREATE_CODE")
		}

		resp := fiber.Map{
			"message":    "Code sent",
			"expires_in": int(otpTTL.Seconds()),
		}
		if cfg.IsDevelopment() {
			resp["debug_code"] = code
		}
		return c.JSON(resp)
	}
}
