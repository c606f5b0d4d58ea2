package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/domain/entity"
)

// GoalRecord is the serialized form of a goal inside a slot.
type GoalRecord struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
	Icon          string  `json:"icon"`
	Color         string  `json:"color"`
}

// ToEntity converts a GoalRecord to a domain Goal entity.
func (r *GoalRecord) ToEntity() (*entity.Goal, error) {
	deadline, err := ParseTimestamp(r.Deadline)
	if err != nil {
		return nil, fmt.Errorf("goal %s: %w", r.ID, err)
	}

	return &entity.Goal{
		ID:            r.ID,
		Title:         r.Title,
		TargetAmount:  decimal.NewFromFloat(r.TargetAmount),
		CurrentAmount: decimal.NewFromFloat(r.CurrentAmount),
		Deadline:      deadline,
		Icon:          r.Icon,
		Color:         r.Color,
	}, nil
}

// GoalRecordFromEntity creates a GoalRecord from a domain Goal entity.
func GoalRecordFromEntity(goal *entity.Goal) GoalRecord {
	return GoalRecord{
		ID:            goal.ID,
		Title:         goal.Title,
		TargetAmount:  goal.TargetAmount.InexactFloat64(),
		CurrentAmount: goal.CurrentAmount.InexactFloat64(),
		Deadline:      FormatTimestamp(goal.Deadline),
		Icon:          goal.Icon,
		Color:         goal.Color,
	}
}
