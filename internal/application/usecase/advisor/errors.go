package advisor

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Failure codes attached to collaborator errors when they are logged.
const (
	ErrCodeAIServiceUnavailable = "AI_SERVICE_UNAVAILABLE"
	ErrCodeAIRateLimited        = "AI_RATE_LIMITED"
	ErrCodeAIAuthError          = "AI_AUTH_ERROR"
	ErrCodeAITimeout            = "AI_TIMEOUT"
	ErrCodeAIBlocked            = "AI_BLOCKED"
	ErrCodeAIUnknownError       = "AI_UNKNOWN_ERROR"
)

// FailureReason describes why the collaborator could not answer.
type FailureReason struct {
	Code      string    `json:"code"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

// classifyError maps a collaborator error to a failure code and a retryable flag.
func classifyError(err error) *FailureReason {
	reason := func(code string, retryable bool) *FailureReason {
		return &FailureReason{Code: code, Retryable: retryable, Timestamp: time.Now()}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return reason(ErrCodeAITimeout, true)
	}

	errStr := strings.ToLower(err.Error())
	containsAny := func(needles ...string) bool {
		for _, n := range needles {
			if strings.Contains(errStr, n) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("rate limit", "quota", "429", "resource exhausted"):
		return reason(ErrCodeAIRateLimited, true)
	case containsAny("401", "403", "invalid api key", "api key not valid", "unauthorized", "permission denied", "authentication"):
		return reason(ErrCodeAIAuthError, false)
	case containsAny("blocked", "safety"):
		return reason(ErrCodeAIBlocked, false)
	case containsAny("connection", "network", "dial", "timeout", "unavailable", "503"):
		return reason(ErrCodeAIServiceUnavailable, true)
	default:
		return reason(ErrCodeAIUnknownError, true)
	}
}
