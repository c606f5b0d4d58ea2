package transaction

import (
	"context"
	"sort"

	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/domain/entity"
	domainerror "github.com/finz/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Type *entity.TransactionType // Optional filter
}

// ListTransactionsOutput represents the output of listing transactions.
// Totals always cover the full collection, regardless of the filter.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Totals       entity.FinancialTotals
}

// ListTransactionsUseCase handles listing transactions in display order.
type ListTransactionsUseCase struct {
	store *state.TransactionStore
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(store *state.TransactionStore) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		store: store,
	}
}

// Execute returns the transactions sorted by date, newest first.
// Transactions sharing a date keep their store order.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	all := uc.store.All()
	totals := state.Totals(all)

	transactions := all
	if input.Type != nil {
		transactions = make([]*entity.Transaction, 0, len(all))
		for _, tx := range all {
			if tx.Type == *input.Type {
				transactions = append(transactions, tx)
			}
		}
	}

	SortByDateDesc(transactions)

	return &ListTransactionsOutput{
		Transactions: transactions,
		Totals:       totals,
	}, nil
}

// SortByDateDesc orders transactions newest first, keeping store order for ties.
func SortByDateDesc(transactions []*entity.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}
