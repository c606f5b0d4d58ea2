package goal

import (
	"context"

	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/domain/entity"
)

// GoalProgress pairs a goal with its derived progress.
type GoalProgress struct {
	Goal      *entity.Goal
	Progress  int
	Completed bool
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []GoalProgress
}

// ListGoalsUseCase handles listing goals in insertion order.
type ListGoalsUseCase struct {
	store *state.GoalStore
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(store *state.GoalStore) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		store: store,
	}
}

// Execute returns every goal with its progress percentage.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	return &ListGoalsOutput{
		Goals: WithProgress(uc.store.All()),
	}, nil
}

// WithProgress derives progress for each goal, preserving order.
func WithProgress(goals []*entity.Goal) []GoalProgress {
	out := make([]GoalProgress, len(goals))
	for i, g := range goals {
		out[i] = GoalProgress{
			Goal:      g,
			Progress:  g.ProgressPercent(),
			Completed: g.IsCompleted(),
		}
	}
	return out
}
