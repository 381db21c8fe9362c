package services

import (
	"testing"
	"time"

	"funhub/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an in-memory sqlite database with the same TranslateError
// setting production uses, so unique violations surface as
// gorm.ErrDuplicatedKey here too.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		// sqlite keeps timestamps as text; writing them all in UTC keeps
		// range comparisons consistent.
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// One connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Player{},
		&models.Game{},
		&models.LeaderboardEntry{},
		&models.GameSession{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedGame(t *testing.T, db *gorm.DB, slug, name string) models.Game {
	t.Helper()
	game := models.Game{Slug: slug, Name: name}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("seed game %s: %v", slug, err)
	}
	return game
}

func seedPlayer(t *testing.T, db *gorm.DB, deviceID, displayName string) models.Player {
	t.Helper()
	player := models.Player{
		DeviceID:     deviceID,
		DisplayName:  displayName,
		LastActiveAt: time.Now().UTC(),
	}
	if err := db.Create(&player).Error; err != nil {
		t.Fatalf("seed player %s: %v", deviceID, err)
	}
	return player
}
