// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/domain/entity"
	"github.com/finz/backend/internal/domain/valueobject"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
	QuickPick  []valueobject.Category
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	Name             valueobject.Category
	IsPreset         bool
	TransactionCount int
	ExpenseTotal     decimal.Decimal
}

// ListCategoriesUseCase lists the preset categories followed by every
// custom label already used by a transaction.
type ListCategoriesUseCase struct {
	transactions *state.TransactionStore
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(transactions *state.TransactionStore) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		transactions: transactions,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories := make([]*CategoryOutput, 0, len(valueobject.PresetCategories))
	index := make(map[valueobject.Category]*CategoryOutput, len(valueobject.PresetCategories))

	for _, preset := range valueobject.PresetCategories {
		out := &CategoryOutput{Name: preset, IsPreset: true, ExpenseTotal: decimal.Zero}
		categories = append(categories, out)
		index[preset] = out
	}

	// Custom labels are appended in first-seen store order.
	for _, tx := range uc.transactions.All() {
		out, ok := index[tx.Category]
		if !ok {
			out = &CategoryOutput{Name: tx.Category, ExpenseTotal: decimal.Zero}
			categories = append(categories, out)
			index[tx.Category] = out
		}

		out.TransactionCount++
		if tx.Type == entity.TransactionTypeExpense {
			out.ExpenseTotal = out.ExpenseTotal.Add(tx.Amount)
		}
	}

	quickPick := make([]valueobject.Category, len(valueobject.DisplayCategories))
	copy(quickPick, valueobject.DisplayCategories)

	return &ListCategoriesOutput{
		Categories: categories,
		QuickPick:  quickPick,
	}, nil
}
