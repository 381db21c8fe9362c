package services

import (
	"fmt"
	"time"
)

// ScoreRule bounds what a legitimate play can earn: a sustained per-second
// rate plus a hard ceiling that holds no matter how long the session ran.
type ScoreRule struct {
	MaxScorePerSecond float64
	MaxAbsolute       int
}

// ScoreRules is static per-game configuration. Games without a row are
// accepted as-is; rules are opt-in.
var ScoreRules = map[string]ScoreRule{
	// QuizMo: roughly 10 points per 6-second answer.
	"quizmo": {MaxScorePerSecond: 10.0 / 6.0, MaxAbsolute: 10000},
	// MixMo: roughly 5 discoveries per minute.
	"mixmo": {MaxScorePerSecond: 1.0 / 12.0, MaxAbsolute: 1000},
}

// scoreSlack absorbs legitimate hot streaks and clock jitter on top of the
// rate-derived ceiling.
const scoreSlack = 1.5

// minElapsedSeconds rejects sessions that end faster than any human play.
const minElapsedSeconds = 1.0

// ValidateScore decides whether a claimed score is plausible for the time the
// player actually had. Pure over its inputs. The returned reason is audit
// detail for logs, never for clients.
func ValidateScore(gameSlug string, score int, startedAt, now time.Time) (bool, string) {
	if score < 0 {
		return false, "score cannot be negative"
	}

	elapsed := now.Sub(startedAt).Seconds()
	if elapsed < minElapsedSeconds {
		return false, "game ended too quickly"
	}

	rule, ok := ScoreRules[gameSlug]
	if !ok {
		return true, "no rules defined"
	}

	if score > rule.MaxAbsolute {
		return false, fmt.Sprintf("score exceeds maximum allowed (%d)", rule.MaxAbsolute)
	}

	maxPossible := elapsed * rule.MaxScorePerSecond
	if float64(score) > maxPossible*scoreSlack {
		return false, fmt.Sprintf("score too high for elapsed time (%.1fs)", elapsed)
	}

	return true, "valid"
}
