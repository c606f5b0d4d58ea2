// Package error defines domain-specific errors for the FinZ application.
package error

import "errors"

// Storage domain errors.
var (
	// ErrSlotNotFound is returned when a storage slot has never been written.
	ErrSlotNotFound = errors.New("storage slot not found")

	// ErrMalformedSlot is returned when a storage slot holds data that cannot be decoded.
	ErrMalformedSlot = errors.New("storage slot holds malformed data")

	// ErrUnsupportedStorageBackend is returned when the configured backend is unknown.
	ErrUnsupportedStorageBackend = errors.New("unsupported storage backend")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	ErrCodeSlotNotFound       StorageErrorCode = "STO-010001"
	ErrCodeMalformedSlot      StorageErrorCode = "STO-010002"
	ErrCodeSlotReadFailed     StorageErrorCode = "STO-020001"
	ErrCodeSlotWriteFailed    StorageErrorCode = "STO-020002"
	ErrCodeUnsupportedBackend StorageErrorCode = "STO-030001"
)

// StorageError represents a storage error with code, slot and message.
type StorageError struct {
	Code    StorageErrorCode
	Slot    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	msg := e.Message
	if e.Slot != "" {
		msg = e.Message + " (slot " + e.Slot + ")"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError for the given slot.
func NewStorageError(code StorageErrorCode, slot, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Slot:    slot,
		Message: message,
		Err:     err,
	}
}
