package tasks

import (
	"log"
	"time"

	"funhub/database"
	"funhub/models"
)

// CleanupExpiredOtpCodes removes codes that can no longer be redeemed:
// expired ones, and used ones older than a day.
func CleanupExpiredOtpCodes() {
	now := time.Now().UTC()
	dayAgo := now.Add(-24 * time.Hour)

	result := database.DB.
		Where("expires_at < ? OR (used_at IS NOT NULL AND used_at < ?)", now, dayAgo).
		Delete(&models.OtpCode{})

	if result.Error != nil {
		log.Println("❌ Failed to delete stale OTP codes:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d stale OTP codes\n", result.RowsAffected)
	}
}
