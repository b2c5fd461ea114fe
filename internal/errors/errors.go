// Package errors provides consistent error types for recordar.
// It defines two broad categories: validation errors (fixable by the user)
// and system errors around persistence and notification scheduling, which
// are recoverable and never fatal to the process.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrNotFound   = errors.New("reminder not found")
	ErrNotDeleted = errors.New("reminder is not deleted")
)

// ValidationError represents invalid user input: empty reminder text or a
// date/time selection that is not in the future. The operation that raised
// it has not mutated any state.
type ValidationError struct {
	Message    string // What is wrong
	Suggestion string // How to fix it
	Field      string // The input that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message, suggestion string) *ValidationError {
	return &ValidationError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewValidationErrorWithField creates a new ValidationError with field context.
func NewValidationErrorWithField(field, value, message, suggestion string) *ValidationError {
	return &ValidationError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// PersistenceError represents a blob store read or write failure. A write
// failure does not roll back the in-memory mutation; the caller keeps the
// session state and logs the loss of durability.
type PersistenceError struct {
	Op    string // The operation that failed ("load", "save", ...)
	Cause error
}

func (e *PersistenceError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("persistence failed during %s", e.Op)
	}
	return "persistence failed"
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// NewPersistenceError creates a new PersistenceError.
func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

// SchedulingError represents a failure to submit or cancel a notification
// trigger with the external notification service. Store state is unaffected.
type SchedulingError struct {
	Op    string // "submit" or "cancel"
	Cause error
}

func (e *SchedulingError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("notification %s failed", e.Op)
	}
	return "notification scheduling failed"
}

func (e *SchedulingError) Unwrap() error {
	return e.Cause
}

// NewSchedulingError creates a new SchedulingError.
func NewSchedulingError(op string, cause error) *SchedulingError {
	return &SchedulingError{Op: op, Cause: cause}
}

// IsNotFound reports whether err is the not-found sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// IsScheduling reports whether err is a SchedulingError.
func IsScheduling(err error) bool {
	var se *SchedulingError
	return errors.As(err, &se)
}

// AsValidation extracts a ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is is re-exported from the standard errors package for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is re-exported from the standard errors package for convenience.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
