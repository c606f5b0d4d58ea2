package dto

import (
	"time"

	"github.com/finz/backend/internal/application/usecase/advisor"
)

// AskAdvisorRequest represents the request body for asking the advisor.
type AskAdvisorRequest struct {
	Query string `json:"query" binding:"required,max=1000"`
}

// FailureReasonResponse describes why the collaborator could not answer.
type FailureReasonResponse struct {
	Code      string `json:"code"`
	Retryable bool   `json:"retryable"`
	Timestamp string `json:"timestamp"`
}

// AskAdvisorResponse represents the advisor's answer.
type AskAdvisorResponse struct {
	Answer   string                 `json:"answer"`
	Fallback bool                   `json:"fallback"`
	Reason   *FailureReasonResponse `json:"reason,omitempty"`
}

// AdvisorStatusResponse represents the advisor status for a client.
type AdvisorStatusResponse struct {
	Available   bool                   `json:"available"`
	Pending     bool                   `json:"pending"`
	LastFailure *FailureReasonResponse `json:"last_failure,omitempty"`
	Greeting    string                 `json:"greeting"`
	Suggestions []string               `json:"suggestions"`
}

// ToAskAdvisorResponse converts advice output to an AskAdvisorResponse DTO.
func ToAskAdvisorResponse(output *advisor.GetAdviceOutput) AskAdvisorResponse {
	return AskAdvisorResponse{
		Answer:   output.Answer,
		Fallback: output.Fallback,
		Reason:   toFailureReasonResponse(output.Reason),
	}
}

// ToAdvisorStatusResponse converts status output to an AdvisorStatusResponse DTO.
func ToAdvisorStatusResponse(output *advisor.GetStatusOutput) AdvisorStatusResponse {
	return AdvisorStatusResponse{
		Available:   output.Available,
		Pending:     output.Pending,
		LastFailure: toFailureReasonResponse(output.LastFailure),
		Greeting:    output.Greeting,
		Suggestions: output.Suggestions,
	}
}

func toFailureReasonResponse(reason *advisor.FailureReason) *FailureReasonResponse {
	if reason == nil {
		return nil
	}
	return &FailureReasonResponse{
		Code:      reason.Code,
		Retryable: reason.Retryable,
		Timestamp: reason.Timestamp.UTC().Format(time.RFC3339),
	}
}
