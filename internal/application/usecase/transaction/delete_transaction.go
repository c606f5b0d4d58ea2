package transaction

import (
	"context"

	"github.com/finz/backend/internal/application/state"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID string
}

// DeleteTransactionOutput represents the output of transaction deletion.
// Removed is false when no transaction had the given ID.
type DeleteTransactionOutput struct {
	Removed bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	store *state.TransactionStore
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(store *state.TransactionStore) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		store: store,
	}
}

// Execute removes the transaction. Deleting an unknown ID is not an error.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	return &DeleteTransactionOutput{
		Removed: uc.store.Remove(ctx, input.TransactionID),
	}, nil
}
