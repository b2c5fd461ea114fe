// Package validate provides input validation for recordar.
package validate

import (
	"strings"
	"unicode/utf8"

	"recordar/internal/errors"
)

const (
	// MaxTextLength is the maximum length for reminder text.
	MaxTextLength = 512
	// MaxTagLength is the maximum length for a tag.
	MaxTagLength = 64
)

// Text validates reminder text. Empty or whitespace-only text is rejected
// before it can reach the store.
func Text(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.NewValidationError(
			"reminder text cannot be empty",
			"Give the reminder a name")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return errors.NewValidationErrorWithField("text", text,
			"reminder text too long",
			"Reminder text must be 512 characters or fewer")
	}
	return nil
}

// Tag validates a tag. Tags are free-form and may be empty.
func Tag(tag string) error {
	if utf8.RuneCountInString(tag) > MaxTagLength {
		return errors.NewValidationErrorWithField("tag", tag,
			"tag too long",
			"Tags must be 64 characters or fewer")
	}
	return nil
}
