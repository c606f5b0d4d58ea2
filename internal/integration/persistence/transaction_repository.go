package persistence

import (
	"context"
	"encoding/json"

	"github.com/finz/backend/internal/application/adapter"
	"github.com/finz/backend/internal/domain/entity"
	domainerror "github.com/finz/backend/internal/domain/error"
	"github.com/finz/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
// The whole collection lives in one slot as a JSON array.
type transactionRepository struct {
	slots adapter.SlotStore
	slot  string
}

// NewTransactionRepository creates a new transaction repository on the given slot.
func NewTransactionRepository(slots adapter.SlotStore, slot string) adapter.TransactionRepository {
	return &transactionRepository{
		slots: slots,
		slot:  slot,
	}
}

// LoadAll decodes every transaction stored in the slot, preserving order.
func (r *transactionRepository) LoadAll(ctx context.Context) ([]*entity.Transaction, error) {
	payload, err := r.slots.Load(ctx, r.slot)
	if err != nil {
		return nil, err
	}

	var records []model.TransactionRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, malformedSlot(r.slot, err)
	}

	transactions := make([]*entity.Transaction, 0, len(records))
	for i := range records {
		tx, err := records[i].ToEntity()
		if err != nil {
			return nil, malformedSlot(r.slot, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// SaveAll replaces the slot contents with the given collection.
func (r *transactionRepository) SaveAll(ctx context.Context, transactions []*entity.Transaction) error {
	records := make([]model.TransactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = model.TransactionRecordFromEntity(tx)
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeSlotWriteFailed, r.slot, "failed to encode transactions", err)
	}
	return r.slots.Save(ctx, r.slot, payload)
}

func malformedSlot(slot string, err error) error {
	return domainerror.NewStorageError(domainerror.ErrCodeMalformedSlot, slot, "failed to decode slot: "+err.Error(), domainerror.ErrMalformedSlot)
}
