// Package error defines domain-specific errors for the AuraCash application.
package error

import "errors"

// Shared account domain errors.
var (
	// ErrAccountNotFound is returned when a shared account is not found.
	ErrAccountNotFound = errors.New("shared account not found")

	// ErrAlreadyMember is returned when the caller is already the owner or a member of the account.
	ErrAlreadyMember = errors.New("already a member of this account")

	// ErrNotMember is returned when the caller has no membership row on the account.
	ErrNotMember = errors.New("not a member of this account")

	// ErrNotAccountOwner is returned when an owner-only operation is attempted by someone else.
	ErrNotAccountOwner = errors.New("only the account owner may perform this operation")

	// ErrAccountAccessDenied is returned when the caller is neither owner nor member.
	ErrAccountAccessDenied = errors.New("access to this account denied")

	// ErrSharedTransactionNotFound is returned when a shared transaction is not found on the account.
	ErrSharedTransactionNotFound = errors.New("shared transaction not found")

	// ErrNotTransactionCreator is returned when a member other than the creator or the
	// account owner attempts to delete a shared transaction.
	ErrNotTransactionCreator = errors.New("only the creator or the account owner may delete this transaction")
)

// SharedAccountErrorCode defines error codes for shared account errors.
// Format: SHA-XXYYYY where XX is category and YYYY is specific error.
type SharedAccountErrorCode string

const (
	ErrCodeAccountNotFound           SharedAccountErrorCode = "SHA-010001"
	ErrCodeAlreadyMember             SharedAccountErrorCode = "SHA-010002"
	ErrCodeNotMember                 SharedAccountErrorCode = "SHA-010003"
	ErrCodeNotAccountOwner           SharedAccountErrorCode = "SHA-010004"
	ErrCodeAccountAccessDenied       SharedAccountErrorCode = "SHA-010005"
	ErrCodeSharedTransactionNotFound SharedAccountErrorCode = "SHA-010006"
	ErrCodeNotTransactionCreator     SharedAccountErrorCode = "SHA-010007"
	ErrCodeMissingAccountFields      SharedAccountErrorCode = "SHA-010008"
)

// SharedAccountError represents a shared account error with code and message.
type SharedAccountError struct {
	Code    SharedAccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SharedAccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SharedAccountError) Unwrap() error {
	return e.Err
}

// NewSharedAccountError creates a new SharedAccountError with the given code and message.
func NewSharedAccountError(code SharedAccountErrorCode, message string, err error) *SharedAccountError {
	return &SharedAccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
