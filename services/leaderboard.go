package services

import (
	"errors"
	"time"

	"funhub/models"

	"gorm.io/gorm"
)

// Leaderboards is the best-score store: one row per (game, player), holding
// only the highest score that player ever submitted for that game.
type Leaderboards struct {
	db *gorm.DB
}

func NewLeaderboards(db *gorm.DB) *Leaderboards {
	return &Leaderboards{db: db}
}

// UpsertIfBetter stores the score only when it beats the existing best. The
// update is a single conditional write so two concurrent submissions cannot
// clobber each other's higher score. The returned bool is true when this call
// changed the stored best.
func (b *Leaderboards) UpsertIfBetter(gameID, playerID uint, score int) (bool, error) {
	res := b.db.Model(&models.LeaderboardEntry{}).
		Where("game_id = ? AND player_id = ? AND score < ?", gameID, playerID, score).
		Update("score", score)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := b.db.Model(&models.LeaderboardEntry{}).
		Where("game_id = ? AND player_id = ?", gameID, playerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		// Existing best is equal or higher; ties do not replace.
		return false, nil
	}

	entry := models.LeaderboardEntry{GameID: gameID, PlayerID: playerID, Score: score}
	if err := b.db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the first-entry race; retry as a conditional update.
			res := b.db.Model(&models.LeaderboardEntry{}).
				Where("game_id = ? AND player_id = ? AND score < ?", gameID, playerID, score).
				Update("score", score)
			return res.RowsAffected > 0, res.Error
		}
		return false, err
	}
	return true, nil
}

// RankOf ranks a score by counting strictly higher bests, so tied scores
// share a rank.
func (b *Leaderboards) RankOf(gameID uint, score int) (int, error) {
	var count int64
	if err := b.db.Model(&models.LeaderboardEntry{}).
		Where("game_id = ? AND score > ?", gameID, score).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// BestFor fetches a player's stored best for a game, nil when none exists.
func (b *Leaderboards) BestFor(gameID, playerID uint) (*models.LeaderboardEntry, error) {
	var entry models.LeaderboardEntry
	err := b.db.Where("game_id = ? AND player_id = ?", gameID, playerID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// RankedEntry is one listing row. Rank here is positional within the page.
type RankedEntry struct {
	Rank        int       `json:"rank"`
	DisplayName string    `json:"display_name"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

// List returns the top entries for a game, score descending, optionally
// restricted to entries first achieved in the current period.
func (b *Leaderboards) List(gameID uint, period string, limit int) ([]RankedEntry, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}

	q := b.db.Model(&models.LeaderboardEntry{}).
		Select("leaderboard_entries.score, leaderboard_entries.created_at, players.display_name").
		Joins("JOIN players ON players.id = leaderboard_entries.player_id").
		Where("leaderboard_entries.game_id = ?", gameID).
		Order("leaderboard_entries.score DESC").
		Limit(limit)

	if start, bounded := PeriodStart(period, time.Now().UTC()); bounded {
		q = q.Where("leaderboard_entries.created_at >= ?", start)
	}

	rows := make([]RankedEntry, 0)
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Rank = i + 1
		if rows[i].DisplayName == "" {
			rows[i].DisplayName = "Anonymous"
		}
	}
	return rows, nil
}

// PeriodStart gives the lower created_at bound for a listing period. The
// second return is false when the period spans all time. Days roll over at
// UTC midnight; weeks start on Monday.
func PeriodStart(period string, now time.Time) (time.Time, bool) {
	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case "daily":
		return dayStart, true
	case "weekly":
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		return dayStart.AddDate(0, 0, -daysSinceMonday), true
	default:
		return time.Time{}, false
	}
}
