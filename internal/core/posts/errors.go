package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrPostNotFound is returned when a post identifier does not resolve
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthor is returned when a mutating caller is not the post's author.
	// Existence is always checked first so an absent post never leaks
	// ownership information beyond "not found".
	ErrNotAuthor = errors.New("not authorized to modify this post")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
