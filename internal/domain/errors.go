package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced record does not exist in
	// the store at call time.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyFinalized is returned on an attempt to confirm or reject a
	// payment that has already left the Pending state.
	ErrAlreadyFinalized = errors.New("payment already finalized")

	// ErrDuplicateEmail is returned when a create would violate the email
	// uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrStoreUnavailable wraps transient store failures. Operations that
	// hit it abort without partial effect and are safe to retry whole.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInvalidCredentials is returned on a failed staff login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks malformed input to a service operation. Never
// retried automatically; the caller surfaces it to the user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
