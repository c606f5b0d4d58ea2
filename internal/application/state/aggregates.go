package state

import (
	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/domain/entity"
	"github.com/finz/backend/internal/domain/valueobject"
)

// TotalFor sums the amounts of all transactions of the given type.
func TotalFor(transactions []*entity.Transaction, txType entity.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == txType {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Totals computes income, expense and balance over the given transactions.
func Totals(transactions []*entity.Transaction) entity.FinancialTotals {
	income := TotalFor(transactions, entity.TransactionTypeIncome)
	expense := TotalFor(transactions, entity.TransactionTypeExpense)

	return entity.FinancialTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// CategoryBreakdown sums expense amounts per category.
// Categories are returned in the order they are first seen in transactions.
func CategoryBreakdown(transactions []*entity.Transaction) []entity.CategoryTotal {
	index := make(map[valueobject.Category]int)
	breakdown := make([]entity.CategoryTotal, 0)

	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}

		pos, seen := index[tx.Category]
		if !seen {
			index[tx.Category] = len(breakdown)
			breakdown = append(breakdown, entity.CategoryTotal{
				Category: tx.Category,
				Amount:   tx.Amount,
			})
			continue
		}

		breakdown[pos].Amount = breakdown[pos].Amount.Add(tx.Amount)
	}

	return breakdown
}
