package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenConfig carries everything token issuance and verification need. Now is
// injectable so tests can pin the clock.
type TokenConfig struct {
	Secret            []byte
	GameSessionTTL    time.Duration
	AccountSessionTTL time.Duration
	Now               func() time.Time
}

// GameSessionClaims is the payload of a game session token. StartedAt is unix
// seconds, fractional part included, so elapsed-time checks keep sub-second
// precision.
type GameSessionClaims struct {
	jwt.RegisteredClaims
	SessionID string  `json:"session_id"`
	GameSlug  string  `json:"game_slug"`
	DeviceID  string  `json:"device_id"`
	StartedAt float64 `json:"started_at"`
}

// StartedAtTime converts the unix-seconds claim back to a time.
func (c GameSessionClaims) StartedAtTime() time.Time {
	sec := int64(c.StartedAt)
	nsec := int64((c.StartedAt - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC()
}

// Tokens signs and verifies the two token kinds the API uses: short-lived
// game session tokens and longer-lived account session tokens. Both are HS256
// over the same secret.
type Tokens struct {
	cfg TokenConfig
}

func NewTokens(cfg TokenConfig) *Tokens {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.GameSessionTTL <= 0 {
		cfg.GameSessionTTL = 2 * time.Hour
	}
	if cfg.AccountSessionTTL <= 0 {
		cfg.AccountSessionTTL = 7 * 24 * time.Hour
	}
	return &Tokens{cfg: cfg}
}

// IssueGameSession mints the signed credential for one play attempt. Nothing
// is stored server-side until the token is redeemed.
func (t *Tokens) IssueGameSession(gameSlug, deviceID string) (string, time.Time, error) {
	now := t.cfg.Now().UTC()
	claims := GameSessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.GameSessionTTL)),
		},
		SessionID: uuid.New().String(),
		GameSlug:  gameSlug,
		DeviceID:  deviceID,
		StartedAt: float64(now.UnixNano()) / float64(time.Second),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.cfg.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, now, nil
}

// ParseGameSession verifies signature and expiry and returns the claims.
func (t *Tokens) ParseGameSession(raw string) (GameSessionClaims, error) {
	var claims GameSessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.cfg.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return GameSessionClaims{}, ErrGameSessionExpired
		}
		return GameSessionClaims{}, ErrGameSessionInvalid.WithReason(err.Error())
	}
	if claims.SessionID == "" || claims.GameSlug == "" {
		return GameSessionClaims{}, ErrGameSessionInvalid.WithReason("missing session claims")
	}
	return claims, nil
}

// IssueAccountSession mints a login token with the account id as subject.
func (t *Tokens) IssueAccountSession(accountID uint) (string, error) {
	now := t.cfg.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(accountID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.AccountSessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.cfg.Secret)
}

// ParseAccountSession verifies a login token and returns the account id.
func (t *Tokens) ParseAccountSession(raw string) (uint, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.cfg.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrAccountSessionExpired
		}
		return 0, ErrAccountSessionInvalid.WithReason(err.Error())
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrAccountSessionInvalid.WithReason("bad subject claim")
	}
	return uint(id), nil
}

func (t *Tokens) keyFunc(_ *jwt.Token) (interface{}, error) {
	return t.cfg.Secret, nil
}
