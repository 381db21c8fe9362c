package services

import (
	"errors"

	"funhub/models"

	"gorm.io/gorm"
)

// ValidGames is the static allow-list of slugs the API serves. The games
// table mirrors it through the startup seed.
var ValidGames = []string{"mixmo", "quizmo"}

func IsValidGame(slug string) bool {
	for _, g := range ValidGames {
		if g == slug {
			return true
		}
	}
	return false
}

// GameIDBySlug resolves a slug through the games table.
func GameIDBySlug(db *gorm.DB, slug string) (uint, error) {
	var game models.Game
	if err := db.Where("slug = ?", slug).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrGameNotFound
		}
		return 0, err
	}
	return game.ID, nil
}
