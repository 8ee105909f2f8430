// Package error defines domain-specific errors for the AuraCash application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found or not owned by the caller.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryKind is returned when the kind is not income or expense.
	ErrInvalidCategoryKind = errors.New("invalid category kind")

	// ErrEmptyCategoryName is returned when the category name is blank.
	ErrEmptyCategoryName = errors.New("category name is required")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound    CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryKind CategoryErrorCode = "CAT-010002"
	ErrCodeEmptyCategoryName   CategoryErrorCode = "CAT-010003"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
