package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Spin authorization errors
	ErrMsgInsufficientEnergy   = "insufficient energy"
	ErrMsgInsufficientCurrency = "insufficient currency"
	ErrMsgSpinInProgress       = "spin already in progress"

	// Stake errors
	ErrMsgStakeOutOfRange = "stake out of range"

	// Configuration errors
	ErrMsgEmptyCatalog  = "symbol catalog is empty"
	ErrMsgEmptyLineSet  = "line set is empty"
	ErrMsgUnknownTheme  = "unknown theme"
	ErrMsgInvalidConfig = "invalid configuration"
	ErrMsgShuttingDown  = "engine is shutting down"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrInsufficientEnergy   = errors.New(ErrMsgInsufficientEnergy)
	ErrInsufficientCurrency = errors.New(ErrMsgInsufficientCurrency)
	ErrSpinInProgress       = errors.New(ErrMsgSpinInProgress)
	ErrStakeOutOfRange      = errors.New(ErrMsgStakeOutOfRange)
	ErrEmptyCatalog         = errors.New(ErrMsgEmptyCatalog)
	ErrEmptyLineSet         = errors.New(ErrMsgEmptyLineSet)
	ErrUnknownTheme         = errors.New(ErrMsgUnknownTheme)
	ErrInvalidConfig        = errors.New(ErrMsgInvalidConfig)
	ErrShuttingDown         = errors.New(ErrMsgShuttingDown)
)

// RejectReason is the declarative reason attached to SpinRejected and
// AutoSpinStopped events
type RejectReason string

const (
	ReasonInsufficientEnergy   RejectReason = "insufficient_energy"
	ReasonInsufficientCurrency RejectReason = "insufficient_currency"
	ReasonSpinInProgress       RejectReason = "spin_in_progress"
	ReasonDisabled             RejectReason = "disabled"
)

// RejectReasonForError maps an authorization error to its event reason
func RejectReasonForError(err error) RejectReason {
	switch {
	case errors.Is(err, ErrInsufficientEnergy):
		return ReasonInsufficientEnergy
	case errors.Is(err, ErrInsufficientCurrency):
		return ReasonInsufficientCurrency
	case errors.Is(err, ErrSpinInProgress):
		return ReasonSpinInProgress
	}
	return ReasonSpinInProgress
}
