// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Goal represents a savings goal.
// CurrentAmount always stays within [0, TargetAmount].
type Goal struct {
	ID            string
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Icon          string
	Color         string
}

// GoalDraft is a goal that has not been assigned an ID yet.
// CurrentAmount is not part of the draft: new goals always start at zero.
type GoalDraft struct {
	Title        string
	TargetAmount decimal.Decimal
	Deadline     time.Time
	Icon         string
	Color        string
}

// NewGoal builds a Goal from a draft and an assigned ID with a zero balance.
func NewGoal(id string, draft GoalDraft) *Goal {
	return &Goal{
		ID:            id,
		Title:         draft.Title,
		TargetAmount:  draft.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      draft.Deadline,
		Icon:          draft.Icon,
		Color:         draft.Color,
	}
}

// ApplyContribution adds delta (which may be negative) to the current amount,
// clamping the result to [0, TargetAmount]. Out-of-range results are not errors.
func (g *Goal) ApplyContribution(delta decimal.Decimal) {
	next := g.CurrentAmount.Add(delta)

	if next.GreaterThan(g.TargetAmount) {
		next = g.TargetAmount
	}
	if next.IsNegative() {
		next = decimal.Zero
	}

	g.CurrentAmount = next
}

// ProgressPercent returns round(min(current/target, 1) * 100).
// A goal with a non-positive target is reported as complete.
func (g *Goal) ProgressPercent() int {
	if !g.TargetAmount.IsPositive() {
		return 100
	}

	ratio := g.CurrentAmount.Div(g.TargetAmount)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		ratio = decimal.NewFromInt(1)
	}

	return int(ratio.Mul(hundred).Round(0).IntPart())
}

// IsCompleted reports whether the goal has reached its target.
func (g *Goal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
