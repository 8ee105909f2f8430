// Package error defines domain-specific errors for the AuraCash application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found or not owned by the caller.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidGoalPeriod is returned when the period start is after the period end.
	ErrInvalidGoalPeriod = errors.New("period start must not be after period end")

	// ErrGoalCategoryNotFound is returned when the category for a goal is not found or not owned by the caller.
	ErrGoalCategoryNotFound = errors.New("category not found")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound         GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount  GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalPeriod    GoalErrorCode = "GOL-010003"
	ErrCodeGoalCategoryNotFound GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields    GoalErrorCode = "GOL-010005"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
