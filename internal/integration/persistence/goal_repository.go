package persistence

import (
	"context"
	"encoding/json"

	"github.com/finz/backend/internal/application/adapter"
	"github.com/finz/backend/internal/domain/entity"
	domainerror "github.com/finz/backend/internal/domain/error"
	"github.com/finz/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	slots adapter.SlotStore
	slot  string
}

// NewGoalRepository creates a new goal repository on the given slot.
func NewGoalRepository(slots adapter.SlotStore, slot string) adapter.GoalRepository {
	return &goalRepository{
		slots: slots,
		slot:  slot,
	}
}

// LoadAll decodes every goal stored in the slot, preserving order.
func (r *goalRepository) LoadAll(ctx context.Context) ([]*entity.Goal, error) {
	payload, err := r.slots.Load(ctx, r.slot)
	if err != nil {
		return nil, err
	}

	var records []model.GoalRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, malformedSlot(r.slot, err)
	}

	goals := make([]*entity.Goal, 0, len(records))
	for i := range records {
		goal, err := records[i].ToEntity()
		if err != nil {
			return nil, malformedSlot(r.slot, err)
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

// SaveAll replaces the slot contents with the given collection.
func (r *goalRepository) SaveAll(ctx context.Context, goals []*entity.Goal) error {
	records := make([]model.GoalRecord, len(goals))
	for i, goal := range goals {
		records[i] = model.GoalRecordFromEntity(goal)
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeSlotWriteFailed, r.slot, "failed to encode goals", err)
	}
	return r.slots.Save(ctx, r.slot, payload)
}
