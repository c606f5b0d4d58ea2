// Package error defines domain-specific errors for the FinZ application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the store.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidGoalTitle is returned when the goal title is blank.
	ErrInvalidGoalTitle = errors.New("invalid goal title")

	// ErrInvalidContribution is returned when a contribution amount cannot be parsed.
	ErrInvalidContribution = errors.New("invalid contribution amount")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalTitle    GoalErrorCode = "GOL-010003"
	ErrCodeInvalidContribution GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010005"

	// Persistence errors (02XXXX)
	ErrCodeGoalPersistFailed GoalErrorCode = "GOL-020001"
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
