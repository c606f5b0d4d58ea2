// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/domain/entity"
	domainerror "github.com/finz/backend/internal/domain/error"
)

// DefaultDeadlineWindow is how far ahead the deadline lands when none is given.
const DefaultDeadlineWindow = 90 * 24 * time.Hour

// DefaultIcon is used when a goal is created without an icon.
const DefaultIcon = "🚀"

// Icons offered by the goal form.
var Icons = []string{"🚀", "💻", "✈️", "🎓", "🎸", "🏠", "🚗", "📱"}

// Colors is the palette a new goal's color is drawn from.
var Colors = []string{"#06b6d4", "#ec4899", "#84cc16", "#f97316", "#d946ef"}

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Title        string
	TargetAmount decimal.Decimal
	Deadline     *time.Time // Optional, defaults to now + 90 days
	Icon         string
	Color        string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	store     *state.GoalStore
	now       func() time.Time
	pickColor func() string
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(store *state.GoalStore) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		store: store,
		now:   time.Now,
		pickColor: func() string {
			return Colors[rand.Intn(len(Colors))]
		},
	}
}

// Execute validates the input, applies defaults and stores the goal.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTitle,
			"title is required",
			domainerror.ErrInvalidGoalTitle,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	deadline := uc.now().UTC().Add(DefaultDeadlineWindow)
	if input.Deadline != nil && !input.Deadline.IsZero() {
		deadline = input.Deadline.UTC()
	}

	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = DefaultIcon
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = uc.pickColor()
	}

	goal := uc.store.Add(ctx, entity.GoalDraft{
		Title:        title,
		TargetAmount: input.TargetAmount,
		Deadline:     deadline,
		Icon:         icon,
		Color:        color,
	})

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
