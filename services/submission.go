package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// SubmitResult is the caller-facing outcome of an accepted submission.
type SubmitResult struct {
	Rank    int
	NewBest bool
	Message string
}

// Submissions drives the score pipeline end to end: token verification,
// replay guard, plausibility check, best-score upsert, rank.
type Submissions struct {
	db      *gorm.DB
	tokens  *Tokens
	ledger  *SessionLedger
	boards  *Leaderboards
	players *Players
	now     func() time.Time
}

func NewSubmissions(db *gorm.DB, tokens *Tokens, ledger *SessionLedger, boards *Leaderboards, players *Players) *Submissions {
	return &Submissions{
		db:      db,
		tokens:  tokens,
		ledger:  ledger,
		boards:  boards,
		players: players,
		now:     tokens.cfg.Now,
	}
}

// StartGame checks the slug and mints a fresh session token.
func (s *Submissions) StartGame(gameSlug, deviceID string) (string, time.Time, error) {
	if !IsValidGame(gameSlug) {
		return "", time.Time{}, ErrUnsupportedGame
	}
	return s.tokens.IssueGameSession(gameSlug, deviceID)
}

// Submit runs the submission state machine; the first failing step ends the
// request. The session is burned before plausibility validation, so a score
// that fails validation cannot be retried with the same token.
func (s *Submissions) Submit(gameSlug, rawToken string, score int, displayName string) (SubmitResult, error) {
	if !IsValidGame(gameSlug) {
		return SubmitResult{}, ErrUnsupportedGame
	}

	claims, err := s.tokens.ParseGameSession(rawToken)
	if err != nil {
		return SubmitResult{}, err
	}
	if claims.GameSlug != gameSlug {
		return SubmitResult{}, ErrWrongGame
	}

	gameID, err := GameIDBySlug(s.db, gameSlug)
	if err != nil {
		return SubmitResult{}, err
	}

	player, err := s.players.GetOrCreate(claims.DeviceID, displayName)
	if err != nil {
		return SubmitResult{}, err
	}

	used, err := s.ledger.IsConsumed(claims.SessionID)
	if err != nil {
		return SubmitResult{}, err
	}
	if used {
		return SubmitResult{}, ErrSessionAlreadyUsed
	}

	startedAt := claims.StartedAtTime()
	if err := s.ledger.MarkConsumed(claims.SessionID, gameSlug, claims.DeviceID, score, startedAt); err != nil {
		return SubmitResult{}, err
	}

	if ok, reason := ValidateScore(gameSlug, score, startedAt, s.now().UTC()); !ok {
		// The tripped rule stays server-side; clients get the generic code.
		log.Printf("🚫 Score %d rejected for %s session %s: %s", score, gameSlug, claims.SessionID, reason)
		return SubmitResult{}, ErrValidationFailed.WithReason(reason)
	}

	newBest, err := s.boards.UpsertIfBetter(gameID, player.ID, score)
	if err != nil {
		return SubmitResult{}, err
	}

	rank, err := s.boards.RankOf(gameID, score)
	if err != nil {
		return SubmitResult{}, err
	}

	result := SubmitResult{Rank: rank, NewBest: newBest}
	if newBest {
		result.Message = fmt.Sprintf("New personal best! You ranked #%d", rank)
	} else {
		result.Message = fmt.Sprintf("Score submitted. Your best is still higher. Current rank: #%d", rank)
	}
	return result, nil
}
