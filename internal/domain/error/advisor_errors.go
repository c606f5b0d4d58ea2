// Package error defines domain-specific errors for the FinZ application.
package error

import "errors"

// Advisor domain errors.
var (
	// ErrEmptyQuery is returned when the advisor question is blank.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrAdviceInProgress is returned when a client submits a question while
	// its previous question is still waiting for an answer.
	ErrAdviceInProgress = errors.New("advice request already in progress")

	// ErrAdvisorNotConfigured is returned by the collaborator when no credential is set.
	ErrAdvisorNotConfigured = errors.New("advisor credential is not configured")
)

// AdvisorErrorCode defines error codes for advisor errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdvisorErrorCode string

const (
	ErrCodeEmptyQuery         AdvisorErrorCode = "ADV-010001"
	ErrCodeAdviceInProgress   AdvisorErrorCode = "ADV-020001"
	ErrCodeAdvisorRateLimited AdvisorErrorCode = "ADV-020002"
)

// AdvisorError represents an advisor error with code and message.
type AdvisorError struct {
	Code    AdvisorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdvisorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdvisorError) Unwrap() error {
	return e.Err
}

// NewAdvisorError creates a new AdvisorError with the given code and message.
func NewAdvisorError(code AdvisorErrorCode, message string, err error) *AdvisorError {
	return &AdvisorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
