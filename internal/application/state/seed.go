package state

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/domain/entity"
	"github.com/finz/backend/internal/domain/valueobject"
)

// DemoTransactions returns the sample transactions shown on first launch.
func DemoTransactions(now time.Time) []*entity.Transaction {
	return []*entity.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(150), Type: entity.TransactionTypeExpense, Category: valueobject.CategoryFood, Note: "Burger King", Date: now.Add(-24 * time.Hour)},
		{ID: "2", Amount: decimal.NewFromInt(2500), Type: entity.TransactionTypeIncome, Category: valueobject.CategoryAllowance, Note: "Dad sent money", Date: now.Add(-48 * time.Hour)},
		{ID: "3", Amount: decimal.NewFromInt(450), Type: entity.TransactionTypeExpense, Category: valueobject.CategoryTransport, Note: "Uber to college", Date: now.Add(-200000 * time.Second)},
		{ID: "4", Amount: decimal.NewFromInt(1200), Type: entity.TransactionTypeExpense, Category: valueobject.CategoryShopping, Note: "Myntra Sale", Date: now.Add(-5000 * time.Second)},
	}
}

// DemoGoals returns the sample goals shown on first launch.
func DemoGoals(now time.Time) []*entity.Goal {
	return []*entity.Goal{
		{ID: "1", Title: "Goa Trip", TargetAmount: decimal.NewFromInt(15000), CurrentAmount: decimal.NewFromInt(4500), Deadline: now.Add(5000000 * time.Second), Icon: "🏖️", Color: "#f97316"},
		{ID: "2", Title: "Gaming PC", TargetAmount: decimal.NewFromInt(80000), CurrentAmount: decimal.NewFromInt(12000), Deadline: now.Add(9000000 * time.Second), Icon: "💻", Color: "#06b6d4"},
	}
}
