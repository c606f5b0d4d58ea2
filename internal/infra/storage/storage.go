// Package storage opens the configured slot backend.
package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finz/backend/config"
	"github.com/finz/backend/internal/application/adapter"
	domainerror "github.com/finz/backend/internal/domain/error"
	"github.com/finz/backend/internal/infra/cache"
	"github.com/finz/backend/internal/infra/db"
	"github.com/finz/backend/internal/integration/persistence"
	"github.com/finz/backend/internal/integration/persistence/model"
)

// Storage is an opened slot backend together with its lifecycle hooks.
type Storage struct {
	Slots   adapter.SlotStore
	Backend string
	closeFn func() error
}

// Open connects to the backend named in cfg.Storage.Backend.
func Open(cfg *config.Config) (*Storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendSQLite, config.StorageBackendPostgres:
		var (
			database *db.Database
			err      error
		)
		if cfg.Storage.Backend == config.StorageBackendSQLite {
			database, err = db.NewSQLiteConnection(&cfg.Database)
		} else {
			database, err = db.NewPostgresConnection(&cfg.Database)
		}
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(&model.SlotModel{}); err != nil {
			_ = database.Close()
			return nil, err
		}
		return &Storage{
			Slots:   persistence.NewSlotRepository(database.DB()),
			Backend: cfg.Storage.Backend,
			closeFn: database.Close,
		}, nil

	case config.StorageBackendRedis:
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisStorage(client, cfg.Redis.KeyPrefix), nil

	default:
		return nil, domainerror.NewStorageError(domainerror.ErrCodeUnsupportedBackend, "", "unsupported storage backend "+cfg.Storage.Backend, domainerror.ErrUnsupportedStorageBackend)
	}
}

// NewRedisStorage wraps an existing Redis client.
func NewRedisStorage(client *redis.Client, keyPrefix string) *Storage {
	return &Storage{
		Slots:   persistence.NewRedisSlotRepository(client, keyPrefix),
		Backend: config.StorageBackendRedis,
		closeFn: client.Close,
	}
}

// HealthCheck reports whether the backend answers a ping.
func (s *Storage) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Slots.Ping(ctx); err != nil {
		slog.Error("Storage health check failed", "backend", s.Backend, "error", err)
		return false
	}
	return true
}

// Close releases the backend connection.
func (s *Storage) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
