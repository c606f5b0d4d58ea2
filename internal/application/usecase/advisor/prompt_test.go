package advisor

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/domain/entity"
	"github.com/finz/backend/internal/domain/valueobject"
)

func TestBuildPrompt_Content(t *testing.T) {
	prompt, err := BuildPrompt(state.Snapshot(sampleSnapshot()), "Give me a saving tip.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedFragments := []string{
		"financial advisor for a Gen Z student in India",
		"- Total Income (Recent): ₹2500",
		"- Total Expense (Recent): ₹1800",
		"- Active Goals: Goa Trip: ₹4500/₹15000, Gaming PC: ₹12000/₹80000",
		`{"cat":"Food","amt":150,"note":"Burger King"}`,
		"Currency is Indian Rupee (₹).",
		"\n\nUser Question: Give me a saving tip.",
	}
	for _, fragment := range expectedFragments {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("expected prompt to contain %q\n%s", fragment, prompt)
		}
	}
}

func TestBuildPrompt_NoGoals(t *testing.T) {
	prompt, err := BuildPrompt(state.Snapshot{}, "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "- Active Goals: None") {
		t.Errorf("expected goal summary None, got %s", prompt)
	}
	if !strings.Contains(prompt, "- Recent Transactions: []") {
		t.Errorf("expected empty transaction list, got %s", prompt)
	}
}

func TestRecentTransactions(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Store order is insertion order, which deliberately disagrees with date order.
	transactions := make([]*entity.Transaction, 0, 30)
	for i := 0; i < 30; i++ {
		transactions = append(transactions, &entity.Transaction{
			ID:       fmt.Sprintf("t%02d", i),
			Amount:   decimal.NewFromInt(int64(i + 1)),
			Type:     entity.TransactionTypeExpense,
			Category: valueobject.CategoryFood,
			Date:     base.Add(time.Duration((i*7)%30) * time.Hour),
		})
	}

	recent := RecentTransactions(transactions)

	if len(recent) != RecentTransactionsLimit {
		t.Fatalf("expected %d transactions, got %d", RecentTransactionsLimit, len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Date.After(recent[i-1].Date) {
			t.Fatalf("expected date-descending order at %d: %s after %s", i, recent[i].Date, recent[i-1].Date)
		}
	}
	if transactions[0].ID != "t00" {
		t.Error("expected input slice to be left untouched")
	}
}

func TestRecentTransactions_TiesKeepStoreOrder(t *testing.T) {
	date := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)
	transactions := []*entity.Transaction{
		{ID: "a", Date: date},
		{ID: "b", Date: date},
		{ID: "c", Date: date.Add(time.Hour)},
	}

	recent := RecentTransactions(transactions)

	got := []string{recent[0].ID, recent[1].ID, recent[2].ID}
	if strings.Join(got, ",") != "c,a,b" {
		t.Errorf("expected c,a,b got %v", got)
	}
}

func TestBuildPrompt_TotalsCoverAllTransactions(t *testing.T) {
	transactions := make([]*entity.Transaction, 0, 25)
	for i := 0; i < 25; i++ {
		transactions = append(transactions, &entity.Transaction{
			ID:       fmt.Sprint(i),
			Amount:   decimal.NewFromInt(10),
			Type:     entity.TransactionTypeExpense,
			Category: valueobject.CategoryBills,
			Date:     time.Date(2026, 2, 1, i, 0, 0, 0, time.UTC),
		})
	}

	prompt, err := BuildPrompt(state.Snapshot{Transactions: transactions}, "q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "- Total Expense (Recent): ₹250") {
		t.Errorf("expected totals over all 25 transactions, got %s", prompt)
	}
	if n := strings.Count(prompt, `"cat":"Bills"`); n != RecentTransactionsLimit {
		t.Errorf("expected %d listed transactions, got %d", RecentTransactionsLimit, n)
	}
}

func TestEncodeRecent_KeepsEmptyNote(t *testing.T) {
	encoded, err := encodeRecent([]*entity.Transaction{
		{Amount: decimal.NewFromInt(40), Type: entity.TransactionTypeExpense, Category: valueobject.CategoryTransport},
		{Amount: decimal.RequireFromString("12.5"), Type: entity.TransactionTypeExpense, Category: valueobject.CategoryFood, Note: "Chai & samosa"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `[{"cat":"Transport","amt":40,"note":""},{"cat":"Food","amt":12.5,"note":"Chai & samosa"}]`
	if encoded != expected {
		t.Errorf("expected %s, got %s", expected, encoded)
	}
}
