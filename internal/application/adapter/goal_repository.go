// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finz/backend/internal/domain/entity"
)

// GoalRepository mirrors the goal collection into its storage slot.
type GoalRepository interface {
	// LoadAll reads the whole collection in stored order.
	// It returns domainerror.ErrSlotNotFound when nothing was stored yet and
	// domainerror.ErrMalformedSlot when the payload cannot be decoded.
	LoadAll(ctx context.Context) ([]*entity.Goal, error)

	// SaveAll overwrites the stored collection.
	SaveAll(ctx context.Context, goals []*entity.Goal) error
}
