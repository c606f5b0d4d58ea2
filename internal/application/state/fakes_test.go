package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/finz/backend/internal/domain/entity"
)

// recordingTransactionRepo keeps every full-collection write it receives.
type recordingTransactionRepo struct {
	mu      sync.Mutex
	writes  [][]*entity.Transaction
	loadErr error
	loaded  []*entity.Transaction
	saveErr error
}

func (r *recordingTransactionRepo) LoadAll(_ context.Context) ([]*entity.Transaction, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.loaded, nil
}

func (r *recordingTransactionRepo) SaveAll(_ context.Context, transactions []*entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]*entity.Transaction, len(transactions))
	for i, tx := range transactions {
		c := *tx
		snapshot[i] = &c
	}
	r.writes = append(r.writes, snapshot)
	return r.saveErr
}

func (r *recordingTransactionRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}

func (r *recordingTransactionRepo) lastWrite() []*entity.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return nil
	}
	return r.writes[len(r.writes)-1]
}

type recordingGoalRepo struct {
	mu      sync.Mutex
	writes  [][]*entity.Goal
	loadErr error
	loaded  []*entity.Goal
}

func (r *recordingGoalRepo) LoadAll(_ context.Context) ([]*entity.Goal, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.loaded, nil
}

func (r *recordingGoalRepo) SaveAll(_ context.Context, goals []*entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]*entity.Goal, len(goals))
	for i, g := range goals {
		c := *g
		snapshot[i] = &c
	}
	r.writes = append(r.writes, snapshot)
	return nil
}

func (r *recordingGoalRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}

// sequentialIDs returns an IDGenerator producing id-1, id-2, ...
func sequentialIDs() IDGenerator {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
