package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/finz/backend/internal/application/adapter"
	domainerror "github.com/finz/backend/internal/domain/error"
)

// redisSlotRepository implements the adapter.SlotStore interface on Redis.
// Each slot is a plain string key under a shared prefix.
type redisSlotRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisSlotRepository creates a new Redis-backed slot store.
func NewRedisSlotRepository(client *redis.Client, keyPrefix string) adapter.SlotStore {
	return &redisSlotRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *redisSlotRepository) key(slot string) string {
	return r.keyPrefix + slot
}

// Load retrieves the payload stored under the given slot name.
func (r *redisSlotRepository) Load(ctx context.Context, slot string) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.key(slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.NewStorageError(domainerror.ErrCodeSlotNotFound, slot, "slot has never been written", domainerror.ErrSlotNotFound)
		}
		return nil, domainerror.NewStorageError(domainerror.ErrCodeSlotReadFailed, slot, "failed to read slot", err)
	}
	return payload, nil
}

// Save replaces the payload stored under the given slot name.
func (r *redisSlotRepository) Save(ctx context.Context, slot string, payload []byte) error {
	if err := r.client.Set(ctx, r.key(slot), payload, 0).Err(); err != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeSlotWriteFailed, slot, "failed to write slot", err)
	}
	return nil
}

// Ping verifies Redis is reachable.
func (r *redisSlotRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
