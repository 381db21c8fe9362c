package models

import (
	"time"

	"gorm.io/gorm"
)

// GameSession is written once, when a session token is redeemed at score
// submission. The unique index on SessionID is the single-use guard: a second
// insert for the same session fails at the store level. Rows are append-only.
type GameSession struct {
	gorm.Model

	SessionID string    `gorm:"size:36;uniqueIndex;not null" json:"session_id"`
	GameID    uint      `gorm:"index" json:"game_id"`
	PlayerID  uint      `gorm:"index" json:"player_id"`
	GameSlug  string    `gorm:"size:32" json:"game_slug"`
	DeviceID  string    `gorm:"size:255;index" json:"device_id"`
	Score     int       `json:"score"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}
