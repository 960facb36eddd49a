package comments

import (
	"errors"
	"fmt"
)

// Sentinel errors for common comment operations
var (
	// ErrCommentNotFound is returned when a comment identifier does not resolve
	ErrCommentNotFound = errors.New("comment not found")

	// ErrNotAuthor is returned when a mutating caller is not the comment's
	// author. Existence is always checked first.
	ErrNotAuthor = errors.New("not authorized to modify this comment")
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
