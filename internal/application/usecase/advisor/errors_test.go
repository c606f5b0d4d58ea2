package advisor

import (
	"context"
	"errors"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectRetry  bool
	}{
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		{
			name:         "resource exhausted",
			err:          errors.New("googleapi: Error 429: Resource has been exhausted"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "invalid key",
			err:          errors.New("googleapi: Error 400: API key not valid. Please pass a valid API key."),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "blocked by safety filter",
			err:          errors.New("blocked: candidate: FinishReasonSafety"),
			expectedCode: ErrCodeAIBlocked,
			expectRetry:  false,
		},
		{
			name:         "connection refused",
			err:          errors.New("dial tcp 127.0.0.1:443: connection refused"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "anything else",
			err:          errors.New("boom"),
			expectedCode: ErrCodeAIUnknownError,
			expectRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := classifyError(tt.err)

			if reason.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, reason.Code)
			}
			if reason.Retryable != tt.expectRetry {
				t.Errorf("expected retryable %v, got %v", tt.expectRetry, reason.Retryable)
			}
			if reason.Timestamp.IsZero() {
				t.Error("expected timestamp to be set")
			}
		})
	}
}
