package advisor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/finz/backend/internal/application/adapter"
	"github.com/finz/backend/internal/application/state"
	domainerror "github.com/finz/backend/internal/domain/error"
)

// Fixed replies returned in place of collaborator output.
const (
	MissingCredentialMessage = "API Key is missing. Please set the process.env.API_KEY."
	EmptyResponseMessage     = "I couldn't generate advice right now. Try again later!"
	ConnectionFailureMessage = "Sorry, I'm having trouble connecting to the financial brain right now."
)

// DefaultTemperature is the sampling temperature used when none is configured.
const DefaultTemperature float32 = 0.7

// SnapshotSource provides a point-in-time copy of the financial state.
type SnapshotSource interface {
	Snapshot() state.Snapshot
}

// GetAdviceInput represents the input for asking the advisor.
type GetAdviceInput struct {
	ClientID string
	Query    string
}

// GetAdviceOutput represents the advisor's reply.
// Fallback is true when Answer is one of the fixed replies.
type GetAdviceOutput struct {
	Answer   string
	Fallback bool
	Reason   *FailureReason
}

// GetAdviceUseCase builds a prompt from the current snapshot and asks the collaborator.
type GetAdviceUseCase struct {
	source      SnapshotSource
	service     adapter.AdviceService
	tracker     *PendingTracker
	temperature float32
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance.
// A nil service behaves like a collaborator without a credential.
// A negative temperature selects DefaultTemperature; zero is kept.
func NewGetAdviceUseCase(source SnapshotSource, service adapter.AdviceService, tracker *PendingTracker, temperature float32) *GetAdviceUseCase {
	if tracker == nil {
		tracker = NewPendingTracker()
	}
	if temperature < 0 {
		temperature = DefaultTemperature
	}
	return &GetAdviceUseCase{
		source:      source,
		service:     service,
		tracker:     tracker,
		temperature: temperature,
	}
}

// Execute answers the query. Collaborator failures never surface as errors;
// they are replaced by a fixed reply. Errors are returned only for an empty
// query or an overlapping request from the same client.
func (uc *GetAdviceUseCase) Execute(ctx context.Context, input GetAdviceInput) (*GetAdviceOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeEmptyQuery,
			"query cannot be empty",
			domainerror.ErrEmptyQuery,
		)
	}

	if !uc.tracker.TryStart(input.ClientID) {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeAdviceInProgress,
			"a previous question is still being answered",
			domainerror.ErrAdviceInProgress,
		)
	}
	defer uc.tracker.Finish(input.ClientID)

	if uc.service == nil || !uc.service.IsAvailable() {
		slog.Warn("Advice requested without a configured credential")
		return &GetAdviceOutput{Answer: MissingCredentialMessage, Fallback: true}, nil
	}

	prompt, err := BuildPrompt(uc.source.Snapshot(), query)
	if err != nil {
		return uc.fail(input.ClientID, err), nil
	}

	answer, err := uc.service.GenerateAdvice(ctx, &adapter.AdviceRequest{
		SystemInstruction: SystemInstruction,
		Prompt:            prompt,
		Temperature:       uc.temperature,
	})
	if err != nil {
		return uc.fail(input.ClientID, err), nil
	}

	uc.tracker.ClearFailure(input.ClientID)

	if strings.TrimSpace(answer) == "" {
		return &GetAdviceOutput{Answer: EmptyResponseMessage, Fallback: true}, nil
	}

	return &GetAdviceOutput{Answer: answer}, nil
}

func (uc *GetAdviceUseCase) fail(clientID string, err error) *GetAdviceOutput {
	reason := classifyError(err)
	uc.tracker.SetFailure(clientID, reason)

	slog.Error("Advice collaborator call failed",
		"code", reason.Code,
		"retryable", reason.Retryable,
		"error", err,
	)

	return &GetAdviceOutput{
		Answer:   ConnectionFailureMessage,
		Fallback: true,
		Reason:   reason,
	}
}
