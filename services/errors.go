package services

import "net/http"

// Error is a terminal request outcome. Code is the stable identifier clients
// see; Reason carries internal detail for server-side logs and never crosses
// the API boundary.
type Error struct {
	Code   string
	Status int
	Reason string
}

func (e *Error) Error() string { return e.Code }

// Is matches by Code so sentinel comparisons hold across WithReason copies.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithReason returns a copy carrying audit detail.
func (e *Error) WithReason(reason string) *Error {
	return &Error{Code: e.Code, Status: e.Status, Reason: reason}
}

func newError(code string, status int) *Error {
	return &Error{Code: code, Status: status}
}

var (
	ErrUnsupportedGame    = newError("UNSUPPORTED_GAME", http.StatusBadRequest)
	ErrGameSessionInvalid = newError("INVALID_GAME_SESSION", http.StatusBadRequest)
	ErrGameSessionExpired = newError("GAME_SESSION_EXPIRED", http.StatusBadRequest)
	ErrWrongGame          = newError("SESSION_GAME_MISMATCH", http.StatusBadRequest)
	ErrSessionAlreadyUsed = newError("SESSION_ALREADY_USED", http.StatusBadRequest)
	ErrValidationFailed   = newError("SCORE_VALIDATION_FAILED", http.StatusBadRequest)

	ErrGameNotFound    = newError("GAME_NOT_FOUND", http.StatusNotFound)
	ErrPlayerNotFound  = newError("PLAYER_NOT_FOUND", http.StatusNotFound)
	ErrAccountNotFound = newError("ACCOUNT_NOT_FOUND", http.StatusNotFound)

	ErrAccountSessionInvalid = newError("INVALID_TOKEN", http.StatusUnauthorized)
	ErrAccountSessionExpired = newError("TOKEN_EXPIRED", http.StatusUnauthorized)

	ErrInsufficientCredits = newError("INSUFFICIENT_CREDITS", http.StatusBadRequest)
	ErrInvalidOtpCode      = newError("INVALID_OR_USED_CODE", http.StatusBadRequest)
	ErrOtpExpired          = newError("CODE_EXPIRED", http.StatusBadRequest)
	ErrOrderAlreadyUsed    = newError("ORDER_ALREADY_PROCESSED", http.StatusBadRequest)
	ErrInvalidOrder        = newError("INVALID_PAYPAL_ORDER", http.StatusBadRequest)
	ErrUnknownPackage      = newError("UNKNOWN_PACKAGE", http.StatusBadRequest)
	ErrAmountMismatch      = newError("AMOUNT_MISMATCH", http.StatusBadRequest)
)
