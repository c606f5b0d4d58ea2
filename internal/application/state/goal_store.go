package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/adapter"
	"github.com/finz/backend/internal/domain/entity"
)

// GoalStore is the ordered savings-goal collection, oldest first.
// Like TransactionStore it rewrites the whole collection after every mutation.
type GoalStore struct {
	mu    sync.Mutex
	repo  adapter.GoalRepository
	newID IDGenerator
	goals []*entity.Goal
}

// NewGoalStore creates a store seeded with the given collection.
func NewGoalStore(repo adapter.GoalRepository, initial []*entity.Goal, newID IDGenerator) *GoalStore {
	if newID == nil {
		newID = DefaultIDGenerator
	}

	goals := make([]*entity.Goal, 0, len(initial))
	for _, g := range initial {
		goals = append(goals, copyGoal(g))
	}

	return &GoalStore{
		repo:  repo,
		newID: newID,
		goals: goals,
	}
}

// Add assigns a fresh ID to the draft and appends it with a zero balance.
func (s *GoalStore) Add(ctx context.Context, draft entity.GoalDraft) *entity.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal := entity.NewGoal(s.newID(), draft)
	s.goals = append(s.goals, goal)
	s.persistLocked(ctx)

	return copyGoal(goal)
}

// Contribute adds delta to the goal's current amount, clamped to [0, target].
// It returns the updated goal and true, or nil and false when id is unknown.
func (s *GoalStore) Contribute(ctx context.Context, id string, delta decimal.Decimal) (*entity.Goal, bool) {
	result, ok := s.ContributeWithResult(ctx, id, delta)
	if !ok {
		return nil, false
	}
	return result.Goal, true
}

// ContributionResult is a goal after a contribution together with the
// amount it held right before it.
type ContributionResult struct {
	Goal     *entity.Goal
	Previous decimal.Decimal
}

// Clamped reports whether delta could not be applied in full.
func (r ContributionResult) Clamped(delta decimal.Decimal) bool {
	return !r.Goal.CurrentAmount.Equal(r.Previous.Add(delta))
}

// ContributeWithResult behaves like Contribute and also reports the amount
// read under the same lock as the update.
func (s *GoalStore) ContributeWithResult(ctx context.Context, id string, delta decimal.Decimal) (ContributionResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, goal := range s.goals {
		if goal.ID != id {
			continue
		}
		previous := goal.CurrentAmount
		goal.ApplyContribution(delta)
		s.persistLocked(ctx)
		return ContributionResult{Goal: copyGoal(goal), Previous: previous}, true
	}

	return ContributionResult{}, false
}

// Find returns a copy of the goal with the given ID.
func (s *GoalStore) Find(id string) (*entity.Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, goal := range s.goals {
		if goal.ID == id {
			return copyGoal(goal), true
		}
	}
	return nil, false
}

// All returns a copy of the collection in store order.
func (s *GoalStore) All() []*entity.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Goal, len(s.goals))
	for i, goal := range s.goals {
		out[i] = copyGoal(goal)
	}
	return out
}

func (s *GoalStore) persistLocked(ctx context.Context) {
	if s.repo == nil {
		return
	}

	if err := s.repo.SaveAll(context.WithoutCancel(ctx), s.goals); err != nil {
		slog.Error("Failed to persist goals",
			"error", err,
			"count", len(s.goals),
		)
	}
}

func copyGoal(g *entity.Goal) *entity.Goal {
	c := *g
	return &c
}
