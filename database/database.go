package database

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"funhub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, pass, name, port, sslmode,
	)

	// TranslateError lets unique-index races surface as gorm.ErrDuplicatedKey,
	// which the session ledger and leaderboard depend on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db
	log.Println("✅ Connected to database")

	autoMigrateEnv := os.Getenv("DB_AUTO_MIGRATE")
	autoMigrate, err := strconv.ParseBool(autoMigrateEnv)
	if err != nil {
		log.Printf("⚠️  Invalid value for DB_AUTO_MIGRATE: %s\n", autoMigrateEnv)
	}

	if autoMigrate {
		log.Println("🟡 Starting auto-migration...")

		if err := DB.AutoMigrate(
			&models.Account{},
			&models.Player{},
			&models.Game{},
			&models.LeaderboardEntry{},
			&models.GameSession{},
			&models.OtpCode{},
			&models.CreditTransaction{},
			&models.UsedOrder{},
		); err != nil {
			log.Fatal("❌ Failed to auto-migrate database:", err)
		}

		seedGames(DB)
		log.Println("✅ Auto migration completed")
	}
}

// seedGames makes sure every supported game has a row so slug lookups resolve.
func seedGames(db *gorm.DB) {
	seeds := []models.Game{
		{Slug: "mixmo", Name: "MixMo"},
		{Slug: "quizmo", Name: "QuizMo"},
	}
	for _, g := range seeds {
		if err := db.Where("slug = ?", g.Slug).FirstOrCreate(&g).Error; err != nil {
			log.Printf("⚠️  Failed to seed game %s: %v\n", g.Slug, err)
		}
	}
}
