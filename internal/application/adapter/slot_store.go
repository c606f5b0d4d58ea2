// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SlotStore defines durable key-value storage for serialized collections.
// Each slot holds one whole collection and is overwritten in full on save.
type SlotStore interface {
	// Load returns the raw payload stored in the slot.
	// It returns domainerror.ErrSlotNotFound when the slot was never written.
	Load(ctx context.Context, slot string) ([]byte, error)

	// Save overwrites the slot with the given payload.
	Save(ctx context.Context, slot string, payload []byte) error

	// Ping reports whether the underlying storage is reachable.
	Ping(ctx context.Context) error
}
