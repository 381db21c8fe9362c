package services

import (
	"errors"
	"testing"
	"time"

	"funhub/models"

	"gorm.io/gorm"
)

// testClock lets a test issue a token and then submit "later".
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSubmissions(t *testing.T) (*Submissions, *gorm.DB, *testClock) {
	t.Helper()
	db := testDB(t)
	seedGame(t, db, "quizmo", "QuizMo")
	seedGame(t, db, "mixmo", "MixMo")

	clk := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	tokens := NewTokens(TokenConfig{Secret: []byte("test-secret"), Now: clk.Now})
	subs := NewSubmissions(db, tokens, NewSessionLedger(db), NewLeaderboards(db), NewPlayers(db))
	return subs, db, clk
}

func TestSubmitHappyPath(t *testing.T) {
	subs, db, clk := newTestSubmissions(t)

	token, _, err := subs.StartGame("quizmo", "device-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.advance(60 * time.Second)

	result, err := subs.Submit("quizmo", token, 90, "Ana")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.NewBest {
		t.Error("first score should be a new best")
	}
	if result.Rank != 1 {
		t.Errorf("rank = %d, want 1", result.Rank)
	}
	if result.Message != "New personal best! You ranked #1" {
		t.Errorf("message = %q", result.Message)
	}

	// The submission also registered the player and burned the session.
	var player models.Player
	if err := db.Where("device_id = ?", "device-1").First(&player).Error; err != nil {
		t.Fatalf("player not created: %v", err)
	}
	if player.DisplayName != "Ana" {
		t.Errorf("display name = %q, want Ana", player.DisplayName)
	}
	var sessions int64
	db.Model(&models.GameSession{}).Count(&sessions)
	if sessions != 1 {
		t.Errorf("session rows = %d, want 1", sessions)
	}
}

func TestSubmitRejectsUnsupportedGame(t *testing.T) {
	subs, _, _ := newTestSubmissions(t)

	if _, _, err := subs.StartGame("tetris", "device-1"); !errors.Is(err, ErrUnsupportedGame) {
		t.Fatalf("start err = %v, want ErrUnsupportedGame", err)
	}
	if _, err := subs.Submit("tetris", "whatever", 10, ""); !errors.Is(err, ErrUnsupportedGame) {
		t.Fatalf("submit err = %v, want ErrUnsupportedGame", err)
	}
}

func TestSubmitRejectsTokenForAnotherGame(t *testing.T) {
	subs, _, clk := newTestSubmissions(t)

	token, _, err := subs.StartGame("quizmo", "device-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.advance(30 * time.Second)

	if _, err := subs.Submit("mixmo", token, 2, ""); !errors.Is(err, ErrWrongGame) {
		t.Fatalf("err = %v, want ErrWrongGame", err)
	}
}

func TestSubmitRejectsExpiredToken(t *testing.T) {
	subs, _, clk := newTestSubmissions(t)

	token, _, err := subs.StartGame("quizmo", "device-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.advance(2*time.Hour + time.Minute)

	if _, err := subs.Submit("quizmo", token, 50, ""); !errors.Is(err, ErrGameSessionExpired) {
		t.Fatalf("err = %v, want ErrGameSessionExpired", err)
	}

	// Expiry is checked before the ledger, so the answer never changes.
	if _, err := subs.Submit("quizmo", token, 50, ""); !errors.Is(err, ErrGameSessionExpired) {
		t.Fatalf("repeat err = %v, want ErrGameSessionExpired", err)
	}
}

func TestSubmitBurnsSessionOnSecondUse(t *testing.T) {
	subs, _, clk := newTestSubmissions(t)

	token, _, err := subs.StartGame("quizmo", "device-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.advance(60 * time.Second)

	if _, err := subs.Submit("quizmo", token, 90, "Ana"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := subs.Submit("quizmo", token, 95, "Ana"); !errors.Is(err, ErrSessionAlreadyUsed) {
		t.Fatalf("err = %v, want ErrSessionAlreadyUsed", err)
	}
}

func TestSubmitBurnsSessionEvenWhenValidationFails(t *testing.T) {
	subs, _, clk := newTestSubmissions(t)

	token, _, err := subs.StartGame("quizmo", "device-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.advance(60 * time.Second)

	// 151 in 60 seconds is past the quizmo ceiling.
	if _, err := subs.Submit("quizmo", token, 151, "Ana"); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}

	// A plausible retry on the same token must hit the replay guard, not get
	// a second shot at validation.
	if _, err := subs.Submit("quizmo", token, 90, "Ana"); !errors.Is(err, ErrSessionAlreadyUsed) {
		t.Fatalf("retry err = %v, want ErrSessionAlreadyUsed", err)
	}
}

func TestSubmitValidationFailureIsGeneric(t *testing.T) {
	subs, _, clk := newTestSubmissions(t)

	token, _, err := subs.StartGame("quizmo", "device-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.advance(60 * time.Second)

	_, err = subs.Submit("quizmo", token, 151, "Ana")
	if err == nil {
		t.Fatal("implausible score accepted")
	}
	if err.Error() != "SCORE_VALIDATION_FAILED" {
		t.Fatalf("client-visible error = %q, must not leak the tripped rule", err.Error())
	}
}

func TestSubmitKeepsPriorBestAndReportsRank(t *testing.T) {
	subs, db, clk := newTestSubmissions(t)

	token, _, err := subs.StartGame("quizmo", "device-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.advance(60 * time.Second)
	if _, err := subs.Submit("quizmo", token, 90, "Ana"); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	token, _, err = subs.StartGame("quizmo", "device-1")
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	clk.advance(60 * time.Second)

	result, err := subs.Submit("quizmo", token, 80, "Ana")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if result.NewBest {
		t.Error("lower score reported as new best")
	}
	// Rank is computed for the submitted score, not the stored best: the 90
	// already on the board outranks this 80.
	if result.Rank != 2 {
		t.Errorf("rank = %d, want 2", result.Rank)
	}
	if result.Message != "Score submitted. Your best is still higher. Current rank: #2" {
		t.Errorf("message = %q", result.Message)
	}

	var entry models.LeaderboardEntry
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("load entry: %v", err)
	}
	if entry.Score != 90 {
		t.Errorf("stored best = %d, want 90", entry.Score)
	}
}

func TestSubmitTracksSeparateGames(t *testing.T) {
	subs, db, clk := newTestSubmissions(t)

	quizToken, _, _ := subs.StartGame("quizmo", "device-1")
	clk.advance(60 * time.Second)
	if _, err := subs.Submit("quizmo", quizToken, 90, "Ana"); err != nil {
		t.Fatalf("quizmo submit: %v", err)
	}

	mixToken, _, _ := subs.StartGame("mixmo", "device-1")
	clk.advance(120 * time.Second)
	result, err := subs.Submit("mixmo", mixToken, 12, "Ana")
	if err != nil {
		t.Fatalf("mixmo submit: %v", err)
	}
	if !result.NewBest || result.Rank != 1 {
		t.Errorf("mixmo result = %+v, want fresh best at rank 1", result)
	}

	var entries int64
	db.Model(&models.LeaderboardEntry{}).Count(&entries)
	if entries != 2 {
		t.Errorf("entries = %d, want one per game", entries)
	}
}
