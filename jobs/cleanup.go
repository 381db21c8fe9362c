package jobs

import (
	"log"
	"time"

	tasks "funhub/task"

	"github.com/go-co-op/gocron/v2"
)

// StartCleanupScheduler runs the housekeeping tasks on a fixed cadence.
func StartCleanupScheduler() {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("❌ Failed to create cleanup scheduler: %v", err)
		return
	}

	if _, err := scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(tasks.CleanupExpiredOtpCodes),
	); err != nil {
		log.Printf("❌ Failed to schedule OTP cleanup: %v", err)
	}

	scheduler.Start()
}
