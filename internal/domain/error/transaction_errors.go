// Package error defines domain-specific errors for the AuraCash application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found or not owned by the caller.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAmount is returned when the amount is zero, negative or not a finite number.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidTransactionKind is returned when the kind is not income or expense.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInvalidDate is returned when the date is not a valid calendar date.
	ErrInvalidDate = errors.New("invalid date")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeTransactionNotFound    TransactionErrorCode = "TRX-010001"
	ErrCodeInvalidAmount          TransactionErrorCode = "TRX-010002"
	ErrCodeInvalidTransactionKind TransactionErrorCode = "TRX-010003"
	ErrCodeInvalidDate            TransactionErrorCode = "TRX-010004"
	ErrCodeMissingTransactionData TransactionErrorCode = "TRX-010005"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
