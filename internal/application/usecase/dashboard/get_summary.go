package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/application/usecase/goal"
	"github.com/finz/backend/internal/domain/entity"
)

// TopGoalsLimit is how many goals the dashboard previews.
const TopGoalsLimit = 3

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	Private bool
}

// DisplayTotals holds the formatted (or masked) headline amounts.
type DisplayTotals struct {
	Income  string
	Expense string
	Balance string
}

// GoalPreview is a goal on the dashboard with formatted amounts.
type GoalPreview struct {
	goal.GoalProgress
	CurrentDisplay string
	TargetDisplay  string
}

// GetSummaryOutput represents the dashboard summary.
type GetSummaryOutput struct {
	Totals           entity.FinancialTotals
	Display          DisplayTotals
	Categories       []CategoryBreakdownItem
	TopGoals         []GoalPreview
	TransactionCount int
	GoalCount        int
	Private          bool
}

// GetSummaryUseCase builds the dashboard from both stores.
type GetSummaryUseCase struct {
	transactions *state.TransactionStore
	goals        *state.GoalStore
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactions *state.TransactionStore, goals *state.GoalStore) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactions: transactions,
		goals:        goals,
	}
}

// Execute computes totals, the category breakdown and the first goals.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	transactions := uc.transactions.All()
	goals := uc.goals.All()
	totals := state.Totals(transactions)

	top := goals
	if len(top) > TopGoalsLimit {
		top = top[:TopGoalsLimit]
	}

	previews := make([]GoalPreview, 0, len(top))
	for _, gp := range goal.WithProgress(top) {
		previews = append(previews, GoalPreview{
			GoalProgress:   gp,
			CurrentDisplay: maskOr(gp.Goal.CurrentAmount, GoalAmountMask, input.Private),
			TargetDisplay:  maskOr(gp.Goal.TargetAmount, GoalAmountMask, input.Private),
		})
	}

	return &GetSummaryOutput{
		Totals: totals,
		Display: DisplayTotals{
			Income:  maskOr(totals.Income, AmountMask, input.Private),
			Expense: maskOr(totals.Expense, AmountMask, input.Private),
			Balance: maskOr(totals.Balance, AmountMask, input.Private),
		},
		Categories:       buildBreakdown(state.CategoryBreakdown(transactions), totals.Expense, input.Private),
		TopGoals:         previews,
		TransactionCount: len(transactions),
		GoalCount:        len(goals),
		Private:          input.Private,
	}, nil
}

func maskOr(amount decimal.Decimal, mask string, private bool) string {
	if private {
		return mask
	}
	return FormatINR(amount)
}
