package goal

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/domain/entity"
	domainerror "github.com/finz/backend/internal/domain/error"
)

// ContributeGoalInput represents a deposit (positive) or withdrawal (negative).
type ContributeGoalInput struct {
	GoalID string
	Amount decimal.Decimal
}

// ContributeGoalOutput represents the output of a contribution.
type ContributeGoalOutput struct {
	Goal     *entity.Goal
	Progress int
	Clamped  bool
}

// ContributeGoalUseCase handles bounded updates to a goal's saved amount.
type ContributeGoalUseCase struct {
	store *state.GoalStore
}

// NewContributeGoalUseCase creates a new ContributeGoalUseCase instance.
func NewContributeGoalUseCase(store *state.GoalStore) *ContributeGoalUseCase {
	return &ContributeGoalUseCase{
		store: store,
	}
}

// Execute applies the contribution. The saved amount is clamped to
// [0, target]; Clamped reports whether the full amount could not be applied.
func (uc *ContributeGoalUseCase) Execute(ctx context.Context, input ContributeGoalInput) (*ContributeGoalOutput, error) {
	if input.Amount.IsZero() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution amount must not be zero",
			domainerror.ErrInvalidContribution,
		)
	}

	result, ok := uc.store.ContributeWithResult(ctx, input.GoalID, input.Amount)
	if !ok {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	return &ContributeGoalOutput{
		Goal:     result.Goal,
		Progress: result.Goal.ProgressPercent(),
		Clamped:  result.Clamped(input.Amount),
	}, nil
}
