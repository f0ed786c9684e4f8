package service

import "errors"

// ValidationError is a user-facing rejection produced before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrFieldsRequired    = &ValidationError{Message: "Please fill in all fields correctly."}
	ErrSameAccount       = &ValidationError{Message: "From and To accounts cannot be the same."}
	ErrInvalidAmount     = &ValidationError{Message: "Please enter a valid number for amount."}
	ErrNonPositiveAmount = &ValidationError{Message: "Amount must be greater than zero."}
	ErrAmountOutOfRange  = &ValidationError{Message: "Amount is too large or has too many decimal places."}
	ErrPasswordMismatch  = &ValidationError{Message: "Passwords do not match"}
)

var (
	// ErrEmptySession is returned when Login is handed an empty token.
	ErrEmptySession = errors.New("empty session token")
	// ErrNotLoaded is returned by detail operations that need a loaded transaction.
	ErrNotLoaded = errors.New("transaction not loaded")
	// ErrNoViewSession is returned when a request carries no view session.
	ErrNoViewSession = errors.New("no view session")
	// ErrUnauthenticated is returned when a protected operation runs without a session.
	ErrUnauthenticated = errors.New("not authenticated")
)
