package advisor

import "context"

// Greeting is the advisor's opening message.
const Greeting = "Hi! I'm your financial wingman. 🤖 Ask me anything about your spending, savings, or how to save for that Goa trip!"

// SuggestedQuestions are offered as one-tap prompts.
var SuggestedQuestions = []string{
	"How much did I spend on food?",
	"Can I afford a ₹50k bike?",
	"Give me a saving tip.",
}

// GetStatusOutput describes the advisor as seen by one client.
type GetStatusOutput struct {
	Available   bool
	Pending     bool
	LastFailure *FailureReason
	Greeting    string
	Suggestions []string
}

// GetStatusUseCase reports availability, the pending flag and the canned prompts.
type GetStatusUseCase struct {
	available func() bool
	tracker   *PendingTracker
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(available func() bool, tracker *PendingTracker) *GetStatusUseCase {
	return &GetStatusUseCase{
		available: available,
		tracker:   tracker,
	}
}

// Execute returns the advisor status for the client.
func (uc *GetStatusUseCase) Execute(ctx context.Context, clientID string) (*GetStatusOutput, error) {
	suggestions := make([]string, len(SuggestedQuestions))
	copy(suggestions, SuggestedQuestions)

	return &GetStatusOutput{
		Available:   uc.available != nil && uc.available(),
		Pending:     uc.tracker.IsPending(clientID),
		LastFailure: uc.tracker.LastFailure(clientID),
		Greeting:    Greeting,
		Suggestions: suggestions,
	}, nil
}
