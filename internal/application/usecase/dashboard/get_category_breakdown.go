package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/domain/entity"
	"github.com/finz/backend/internal/domain/valueobject"
)

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	Category   valueobject.Category
	Amount     decimal.Decimal
	Percentage float64
	Display    string
}

// GetCategoryBreakdownInput represents the input for getting category breakdown.
type GetCategoryBreakdownInput struct {
	Private bool
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	TotalExpenses decimal.Decimal
	Categories    []CategoryBreakdownItem
	Private       bool
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	transactions *state.TransactionStore
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactions *state.TransactionStore) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactions: transactions,
	}
}

// Execute returns expense totals per category in first-seen order.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	all := uc.transactions.All()
	totals := state.Totals(all)

	return &GetCategoryBreakdownOutput{
		TotalExpenses: totals.Expense,
		Categories:    buildBreakdown(state.CategoryBreakdown(all), totals.Expense, input.Private),
		Private:       input.Private,
	}, nil
}

func buildBreakdown(raw []entity.CategoryTotal, totalExpenses decimal.Decimal, private bool) []CategoryBreakdownItem {
	categories := make([]CategoryBreakdownItem, 0, len(raw))
	for _, item := range raw {
		var percentage float64
		if !totalExpenses.IsZero() {
			pct := item.Amount.Mul(decimal.NewFromInt(100)).Div(totalExpenses)
			percentage, _ = pct.Round(2).Float64()
		}

		display := FormatINR(item.Amount)
		if private {
			display = ChartMask
		}

		categories = append(categories, CategoryBreakdownItem{
			Category:   item.Category,
			Amount:     item.Amount,
			Percentage: percentage,
			Display:    display,
		})
	}
	return categories
}
