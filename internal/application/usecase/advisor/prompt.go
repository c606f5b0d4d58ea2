// Package advisor contains the financial-advice use cases.
package advisor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/domain/entity"
)

// RecentTransactionsLimit caps how many transactions go into a prompt.
const RecentTransactionsLimit = 20

// SystemInstruction is the role description sent with every prompt.
const SystemInstruction = "You are a helpful financial assistant for young adults."

const promptTemplate = `
You are a friendly, cool, and savvy financial advisor for a Gen Z student in India.
The user's current financial snapshot:
- Total Income (Recent): ₹%s
- Total Expense (Recent): ₹%s
- Active Goals: %s
- Recent Transactions: %s

Currency is Indian Rupee (₹).
Keep advice short, actionable, and encouraging. Use emojis.
If the user asks a question, answer it based on this data.
If the user asks for a general tip, look at their spending habits and suggest something specific (e.g., "You spent a lot on food, maybe cook more?").
`

// promptTransaction is the compact shape of a transaction inside the prompt.
type promptTransaction struct {
	Category string  `json:"cat"`
	Amount   float64 `json:"amt"`
	Note     string  `json:"note"`
}

// BuildPrompt renders the snapshot and the user's question into a single prompt.
// Totals cover every transaction; only the most recent ones are listed.
func BuildPrompt(snapshot state.Snapshot, query string) (string, error) {
	totals := state.Totals(snapshot.Transactions)

	recent, err := encodeRecent(RecentTransactions(snapshot.Transactions))
	if err != nil {
		return "", fmt.Errorf("failed to encode recent transactions: %w", err)
	}

	header := fmt.Sprintf(promptTemplate,
		totals.Income.String(),
		totals.Expense.String(),
		GoalsSummary(snapshot.Goals),
		recent,
	)

	return header + "\n\nUser Question: " + query, nil
}

// RecentTransactions returns at most RecentTransactionsLimit transactions,
// newest date first. Ties keep store order.
func RecentTransactions(transactions []*entity.Transaction) []*entity.Transaction {
	sorted := make([]*entity.Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > RecentTransactionsLimit {
		sorted = sorted[:RecentTransactionsLimit]
	}
	return sorted
}

// GoalsSummary renders goals as "title: ₹current/₹target" joined by ", ",
// or "None" when there are no goals.
func GoalsSummary(goals []*entity.Goal) string {
	if len(goals) == 0 {
		return "None"
	}

	parts := make([]string, len(goals))
	for i, g := range goals {
		parts[i] = fmt.Sprintf("%s: ₹%s/₹%s", g.Title, g.CurrentAmount.String(), g.TargetAmount.String())
	}
	return strings.Join(parts, ", ")
}

func encodeRecent(transactions []*entity.Transaction) (string, error) {
	compact := make([]promptTransaction, len(transactions))
	for i, tx := range transactions {
		compact[i] = promptTransaction{
			Category: tx.Category.String(),
			Amount:   tx.Amount.InexactFloat64(),
			Note:     tx.Note,
		}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(compact); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
