// Package error defines domain-specific errors for the AuraCash application.
package error

import "errors"

// Material domain errors.
var (
	// ErrMaterialNotFound is returned when a material is not found or not owned by the caller.
	ErrMaterialNotFound = errors.New("material not found")

	// ErrInvalidMaterialValue is returned when the total value is zero or negative.
	ErrInvalidMaterialValue = errors.New("total value must be greater than zero")

	// ErrInvalidMaterialQuantity is returned when the quantity is zero or negative.
	ErrInvalidMaterialQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidQuantityUsed is returned when a costing line uses a non-positive quantity.
	ErrInvalidQuantityUsed = errors.New("quantity used must be greater than zero")

	// ErrEmptyMaterialList is returned when a costing request has no materials.
	ErrEmptyMaterialList = errors.New("at least one material is required")
)

// MaterialErrorCode defines error codes for material errors.
// Format: MAT-XXYYYY where XX is category and YYYY is specific error.
type MaterialErrorCode string

const (
	ErrCodeMaterialNotFound        MaterialErrorCode = "MAT-010001"
	ErrCodeInvalidMaterialValue    MaterialErrorCode = "MAT-010002"
	ErrCodeInvalidMaterialQuantity MaterialErrorCode = "MAT-010003"
	ErrCodeInvalidQuantityUsed     MaterialErrorCode = "MAT-010004"
	ErrCodeEmptyMaterialList       MaterialErrorCode = "MAT-010005"
	ErrCodeMissingMaterialFields   MaterialErrorCode = "MAT-010006"
)

// MaterialError represents a material error with code and message.
type MaterialError struct {
	Code    MaterialErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MaterialError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MaterialError) Unwrap() error {
	return e.Err
}

// NewMaterialError creates a new MaterialError with the given code and message.
func NewMaterialError(code MaterialErrorCode, message string, err error) *MaterialError {
	return &MaterialError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
