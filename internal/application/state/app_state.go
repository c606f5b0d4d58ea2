package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finz/backend/internal/application/adapter"
	"github.com/finz/backend/internal/domain/entity"
	domainerror "github.com/finz/backend/internal/domain/error"
)

// AppState owns both collections. It is built once by the composition root
// and handed to the use cases; nothing else holds the collections.
type AppState struct {
	Transactions *TransactionStore
	Goals        *GoalStore
}

// Snapshot is a point-in-time copy of both collections.
type Snapshot struct {
	Transactions []*entity.Transaction
	Goals        []*entity.Goal
	TakenAt      time.Time
}

// Snapshot copies the current contents of both stores.
func (a *AppState) Snapshot() Snapshot {
	return Snapshot{
		Transactions: a.Transactions.All(),
		Goals:        a.Goals.All(),
		TakenAt:      time.Now().UTC(),
	}
}

// LoadOptions controls how LoadState fills empty slots.
type LoadOptions struct {
	SeedDemoData bool
	NewID        IDGenerator
	Now          func() time.Time
}

// LoadState reads both slots once and builds the application state.
// A slot that was never written is filled with demo data when requested,
// otherwise left empty. A slot holding malformed data is treated as empty.
// Any other read failure is returned.
func LoadState(ctx context.Context, txRepo adapter.TransactionRepository, goalRepo adapter.GoalRepository, opts LoadOptions) (*AppState, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	var (
		transactions []*entity.Transaction
		goals        []*entity.Goal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		loaded, err := txRepo.LoadAll(gctx)
		switch {
		case err == nil:
			transactions = loaded
		case errors.Is(err, domainerror.ErrSlotNotFound):
			if opts.SeedDemoData {
				transactions = DemoTransactions(now())
				slog.Info("Transaction slot empty, seeded demo data", "count", len(transactions))
			}
		case errors.Is(err, domainerror.ErrMalformedSlot):
			slog.Warn("Transaction slot holds malformed data, starting empty", "error", err)
		default:
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		loaded, err := goalRepo.LoadAll(gctx)
		switch {
		case err == nil:
			goals = loaded
		case errors.Is(err, domainerror.ErrSlotNotFound):
			if opts.SeedDemoData {
				goals = DemoGoals(now())
				slog.Info("Goal slot empty, seeded demo data", "count", len(goals))
			}
		case errors.Is(err, domainerror.ErrMalformedSlot):
			slog.Warn("Goal slot holds malformed data, starting empty", "error", err)
		default:
			return fmt.Errorf("failed to load goals: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("Financial state loaded",
		"transactions", len(transactions),
		"goals", len(goals),
	)

	return &AppState{
		Transactions: NewTransactionStore(txRepo, transactions, opts.NewID),
		Goals:        NewGoalStore(goalRepo, goals, opts.NewID),
	}, nil
}
