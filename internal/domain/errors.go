// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrPhoneAlreadyExists = errors.New("phone already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")

	// Token-related errors
	ErrInvalidToken = errors.New("invalid token")

	// Tenant-related errors
	ErrLocationNotFound  = errors.New("location not found")
	ErrLocationForbidden = errors.New("location does not belong to user")
	ErrNoLocation        = errors.New("user has no location")

	// Legacy merchant errors
	ErrMerchantNotFound = errors.New("merchant not found")
)

// ValidationError names the offending field so clients can surface it.
// It never carries internal detail.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("field %s is required", e.Field)
	}
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// Validation builds a required-field error.
func Validation(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// Validationf builds a validation error with a reason.
func Validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
