package models

import (
	"gorm.io/gorm"
)

// LeaderboardEntry keeps one row per (game, player): the best score ever
// submitted. Score is only replaced when a new submission beats it.
type LeaderboardEntry struct {
	gorm.Model

	GameID   uint `gorm:"index:idx_game_player,unique" json:"game_id"`
	PlayerID uint `gorm:"index:idx_game_player,unique" json:"player_id"`
	Score    int  `gorm:"index" json:"score"`
}
