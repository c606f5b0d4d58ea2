// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/domain/valueobject"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single income or expense record.
// Amount is always positive; Type carries the direction.
type Transaction struct {
	ID       string
	Amount   decimal.Decimal
	Type     TransactionType
	Category valueobject.Category
	Note     string
	Date     time.Time
}

// TransactionDraft is a transaction that has not been assigned an ID yet.
type TransactionDraft struct {
	Amount   decimal.Decimal
	Type     TransactionType
	Category valueobject.Category
	Note     string
	Date     time.Time
}

// NewTransaction builds a Transaction from a draft and an assigned ID.
func NewTransaction(id string, draft TransactionDraft) *Transaction {
	return &Transaction{
		ID:       id,
		Amount:   draft.Amount,
		Type:     draft.Type,
		Category: draft.Category,
		Note:     draft.Note,
		Date:     draft.Date,
	}
}

// FinancialTotals holds the income, expense and balance over a set of transactions.
type FinancialTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// CategoryTotal is the summed expense amount for one category.
type CategoryTotal struct {
	Category valueobject.Category
	Amount   decimal.Decimal
}
