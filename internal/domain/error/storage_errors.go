// Package error defines domain-specific errors for the AuraCash application.
package error

import "errors"

// Storage errors.
var (
	// ErrStorageUnavailable is returned when the backing store cannot be reached.
	// It deliberately carries no backend detail.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrRequiresDatabase is returned by operations that are only available when
	// the relational backend is active.
	ErrRequiresDatabase = errors.New("operation requires the relational backend")
)

// StorageErrorCode defines error codes for storage errors.
type StorageErrorCode string

const (
	ErrCodeStorageUnavailable StorageErrorCode = "STO-010001"
	ErrCodeRequiresDatabase   StorageErrorCode = "STO-010002"
)
