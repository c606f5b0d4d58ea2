// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finz/backend/internal/domain/entity"
)

// TransactionRepository mirrors the transaction collection into its storage slot.
type TransactionRepository interface {
	// LoadAll reads the whole collection in stored order.
	// It returns domainerror.ErrSlotNotFound when nothing was stored yet and
	// domainerror.ErrMalformedSlot when the payload cannot be decoded.
	LoadAll(ctx context.Context) ([]*entity.Transaction, error)

	// SaveAll overwrites the stored collection.
	SaveAll(ctx context.Context, transactions []*entity.Transaction) error
}
