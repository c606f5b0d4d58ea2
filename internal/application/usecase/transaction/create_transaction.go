// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/domain/entity"
	domainerror "github.com/finz/backend/internal/domain/error"
	"github.com/finz/backend/internal/domain/valueobject"
)

// MaxNoteLength is the maximum number of characters allowed in a note.
const MaxNoteLength = 200

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Amount         decimal.Decimal
	Type           entity.TransactionType
	Category       string
	CustomCategory string // Used only when Category is "Other"
	Note           string
	Date           *time.Time // Optional, defaults to now
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	store *state.TransactionStore
	now   func() time.Time
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(store *state.TransactionStore) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		store: store,
		now:   time.Now,
	}
}

// Execute validates the input and records the transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	category, err := valueobject.ParseCategory(input.Category, input.CustomCategory)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCategory,
			"category is required",
			domainerror.ErrInvalidTransactionCategory,
		)
	}

	note := strings.TrimSpace(input.Note)
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			"note must be at most 200 characters",
			domainerror.ErrNoteTooLong,
		)
	}

	date := uc.now().UTC()
	if input.Date != nil && !input.Date.IsZero() {
		date = input.Date.UTC()
	}

	tx := uc.store.Add(ctx, entity.TransactionDraft{
		Amount:   input.Amount,
		Type:     input.Type,
		Category: category,
		Note:     note,
		Date:     date,
	})

	return &CreateTransactionOutput{
		Transaction: tx,
	}, nil
}
