// Package error defines domain-specific errors for the AuraCash application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrEmailAlreadyRegistered is returned when registering with an email that is already in use.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned when the email or password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrWeakPassword is returned when the password does not meet the minimum length.
	ErrWeakPassword = errors.New("password too short")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeEmailAlreadyRegistered AuthErrorCode = "AUT-010001"
	ErrCodeInvalidCredentials     AuthErrorCode = "AUT-010002"
	ErrCodeWeakPassword           AuthErrorCode = "AUT-010003"
	ErrCodeMissingRegisterFields  AuthErrorCode = "AUT-010004"
	ErrCodeMissingToken           AuthErrorCode = "AUT-020001"
	ErrCodeInvalidToken           AuthErrorCode = "AUT-020002"
	ErrCodeRateLimited            AuthErrorCode = "AUT-020003"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
