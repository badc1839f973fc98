package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Roulette errors
	ErrMsgRouletteNotFound = "roulette not found"
	ErrMsgAwardNotFound    = "award not found"
	ErrMsgSlugTaken        = "slug already in use"

	// Spin errors
	ErrMsgSpinDenied        = "spin not permitted"
	ErrMsgRegularSpinDenied = "regular spin not permitted"
	ErrMsgExtraSpinDenied   = "extra spin not permitted"

	// Database/System errors
	ErrMsgDatabaseError     = "database error"
	ErrMsgConnectionTimeout = "connection timeout"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Roulette errors
	ErrRouletteNotFound = errors.New(ErrMsgRouletteNotFound)
	ErrAwardNotFound    = errors.New(ErrMsgAwardNotFound)
	ErrSlugTaken        = errors.New(ErrMsgSlugTaken)

	// Spin errors
	ErrSpinDenied        = errors.New(ErrMsgSpinDenied)
	ErrRegularSpinDenied = errors.New(ErrMsgRegularSpinDenied)
	ErrExtraSpinDenied   = errors.New(ErrMsgExtraSpinDenied)

	// Database/System errors
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
)

// SpinDeniedError is returned when the rate limiter blocks the requested kind of spin.
// It matches ErrSpinDenied and the kind specific sentinel with errors.Is.
type SpinDeniedError struct {
	Kind      SpinKind
	Remaining time.Duration
}

func (e *SpinDeniedError) Error() string {
	if e.Remaining > 0 {
		return fmt.Sprintf("%s spin not permitted, cooldown ends in %s", e.Kind, e.Remaining.Round(time.Second))
	}
	return fmt.Sprintf("%s spin not permitted", e.Kind)
}

// Is implements errors.Is matching
func (e *SpinDeniedError) Is(target error) bool {
	switch target {
	case ErrSpinDenied:
		return true
	case ErrRegularSpinDenied:
		return e.Kind == SpinKindRegular
	case ErrExtraSpinDenied:
		return e.Kind == SpinKindExtra
	}
	return false
}

// NewSpinDeniedError builds the denial for a kind of spin
func NewSpinDeniedError(kind SpinKind, remaining time.Duration) *SpinDeniedError {
	return &SpinDeniedError{Kind: kind, Remaining: remaining}
}
