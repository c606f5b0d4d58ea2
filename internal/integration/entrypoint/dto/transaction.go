package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/usecase/transaction"
	"github.com/finz/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount         float64 `json:"amount" binding:"required"`
	Type           string  `json:"type" binding:"required,oneof=expense income"`
	Category       string  `json:"category" binding:"required"`
	CustomCategory string  `json:"custom_category,omitempty" binding:"omitempty,max=50"`
	Note           string  `json:"note,omitempty"`
	Date           string  `json:"date,omitempty"`
}

// ToInput converts the request into use case input.
func (r CreateTransactionRequest) ToInput() (transaction.CreateTransactionInput, error) {
	input := transaction.CreateTransactionInput{
		Amount:         decimal.NewFromFloat(r.Amount),
		Type:           entity.TransactionType(r.Type),
		Category:       r.Category,
		CustomCategory: r.CustomCategory,
		Note:           r.Note,
	}

	if r.Date != "" {
		date, err := ParseDate(r.Date)
		if err != nil {
			return input, err
		}
		input.Date = &date
	}

	return input, nil
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Note     string `json:"note,omitempty"`
	Date     string `json:"date"`
}

// TotalsResponse represents income, expense and balance.
type TotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Totals       TotalsResponse        `json:"totals"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       tx.ID,
		Amount:   tx.Amount.String(),
		Type:     string(tx.Type),
		Category: tx.Category.String(),
		Note:     tx.Note,
		Date:     tx.Date.UTC().Format(time.RFC3339),
	}
}

// ToTotalsResponse converts FinancialTotals to a TotalsResponse DTO.
func ToTotalsResponse(totals entity.FinancialTotals) TotalsResponse {
	return TotalsResponse{
		Income:  totals.Income.String(),
		Expense: totals.Expense.String(),
		Balance: totals.Balance.String(),
	}
}

// ToTransactionListResponse converts list output to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, tx := range output.Transactions {
		transactions[i] = ToTransactionResponse(tx)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Totals:       ToTotalsResponse(output.Totals),
	}
}

// ParseDate accepts either an RFC 3339 timestamp or a calendar date.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", value)
}
