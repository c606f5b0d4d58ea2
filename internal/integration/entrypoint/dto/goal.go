package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/usecase/goal"
	"github.com/finz/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title        string  `json:"title" binding:"required,max=100"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	Deadline     string  `json:"deadline,omitempty"`
	Icon         string  `json:"icon,omitempty"`
	Color        string  `json:"color,omitempty" binding:"omitempty,hexcolor"`
}

// ToInput converts the request into use case input.
func (r CreateGoalRequest) ToInput() (goal.CreateGoalInput, error) {
	input := goal.CreateGoalInput{
		Title:        r.Title,
		TargetAmount: decimal.NewFromFloat(r.TargetAmount),
		Icon:         r.Icon,
		Color:        r.Color,
	}

	if r.Deadline != "" {
		deadline, err := ParseDate(r.Deadline)
		if err != nil {
			return input, err
		}
		input.Deadline = &deadline
	}

	return input, nil
}

// ContributeGoalRequest represents a signed contribution; negative amounts withdraw.
type ContributeGoalRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
	Progress      int    `json:"progress"`
	Completed     bool   `json:"completed"`
	Deadline      string `json:"deadline"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ContributionResponse represents the result of a contribution.
type ContributionResponse struct {
	Goal    GoalResponse `json:"goal"`
	Clamped bool         `json:"clamped"`
}

// GoalPresetsResponse lists the icons and colors offered for new goals.
type GoalPresetsResponse struct {
	Icons       []string `json:"icons"`
	Colors      []string `json:"colors"`
	DefaultIcon string   `json:"default_icon"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID,
		Title:         g.Title,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Progress:      g.ProgressPercent(),
		Completed:     g.IsCompleted(),
		Deadline:      g.Deadline.UTC().Format(time.RFC3339),
		Icon:          g.Icon,
		Color:         g.Color,
	}
}

// ToGoalListResponse converts list output to a GoalListResponse DTO.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, gp := range output.Goals {
		goals[i] = ToGoalResponse(gp.Goal)
	}
	return GoalListResponse{Goals: goals}
}

// ToGoalPresetsResponse returns the goal form presets.
func ToGoalPresetsResponse() GoalPresetsResponse {
	icons := make([]string, len(goal.Icons))
	copy(icons, goal.Icons)
	colors := make([]string, len(goal.Colors))
	copy(colors, goal.Colors)

	return GoalPresetsResponse{
		Icons:       icons,
		Colors:      colors,
		DefaultIcon: goal.DefaultIcon,
	}
}
