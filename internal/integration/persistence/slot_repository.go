// Package persistence implements repository interfaces for storage operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finz/backend/internal/application/adapter"
	domainerror "github.com/finz/backend/internal/domain/error"
	"github.com/finz/backend/internal/integration/persistence/model"
)

// slotRepository implements the adapter.SlotStore interface on a SQL database.
type slotRepository struct {
	db *gorm.DB
}

// NewSlotRepository creates a new SQL-backed slot store.
func NewSlotRepository(db *gorm.DB) adapter.SlotStore {
	return &slotRepository{
		db: db,
	}
}

// Load retrieves the payload stored under the given slot name.
func (r *slotRepository) Load(ctx context.Context, slot string) ([]byte, error) {
	var slotModel model.SlotModel
	result := r.db.WithContext(ctx).Where("name = ?", slot).First(&slotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewStorageError(domainerror.ErrCodeSlotNotFound, slot, "slot has never been written", domainerror.ErrSlotNotFound)
		}
		return nil, domainerror.NewStorageError(domainerror.ErrCodeSlotReadFailed, slot, "failed to read slot", result.Error)
	}
	return []byte(slotModel.Payload), nil
}

// Save replaces the payload stored under the given slot name.
func (r *slotRepository) Save(ctx context.Context, slot string, payload []byte) error {
	slotModel := model.SlotModel{
		Name:      slot,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).Create(&slotModel).Error
	})
	if err != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeSlotWriteFailed, slot, "failed to write slot", err)
	}
	return nil
}

// Ping verifies the database is reachable.
func (r *slotRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
