// Package state holds the in-memory financial state of the application:
// the transaction and goal collections, their storage mirrors and the
// aggregates derived from them.
package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/adapter"
	"github.com/finz/backend/internal/domain/entity"
)

// IDGenerator returns a fresh unique identifier.
type IDGenerator func() string

// DefaultIDGenerator generates random UUIDs.
func DefaultIDGenerator() string {
	return uuid.NewString()
}

// TransactionStore is the ordered, most-recent-first transaction collection.
// Every mutation rewrites the whole collection to its repository while the
// store lock is held, so writes never interleave.
type TransactionStore struct {
	mu           sync.Mutex
	repo         adapter.TransactionRepository
	newID        IDGenerator
	transactions []*entity.Transaction
}

// NewTransactionStore creates a store seeded with the given collection.
func NewTransactionStore(repo adapter.TransactionRepository, initial []*entity.Transaction, newID IDGenerator) *TransactionStore {
	if newID == nil {
		newID = DefaultIDGenerator
	}

	transactions := make([]*entity.Transaction, 0, len(initial))
	for _, tx := range initial {
		transactions = append(transactions, copyTransaction(tx))
	}

	return &TransactionStore{
		repo:         repo,
		newID:        newID,
		transactions: transactions,
	}
}

// Add assigns a fresh ID to the draft and inserts it at the front of the collection.
// The draft is stored as-is; validation belongs to the caller.
func (s *TransactionStore) Add(ctx context.Context, draft entity.TransactionDraft) *entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := entity.NewTransaction(s.newID(), draft)
	s.transactions = append([]*entity.Transaction{tx}, s.transactions...)
	s.persistLocked(ctx)

	return copyTransaction(tx)
}

// Remove deletes the transaction with the given ID.
// An unknown ID is a no-op and reports false.
func (s *TransactionStore) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tx := range s.transactions {
		if tx.ID != id {
			continue
		}
		s.transactions = append(s.transactions[:i:i], s.transactions[i+1:]...)
		s.persistLocked(ctx)
		return true
	}

	return false
}

// All returns a copy of the collection in store order.
func (s *TransactionStore) All() []*entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Transaction, len(s.transactions))
	for i, tx := range s.transactions {
		out[i] = copyTransaction(tx)
	}
	return out
}

// Len returns the number of stored transactions.
func (s *TransactionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

// TotalFor sums the amounts of all stored transactions of the given type.
func (s *TransactionStore) TotalFor(txType entity.TransactionType) decimal.Decimal {
	return TotalFor(s.All(), txType)
}

// CategoryBreakdown sums stored expense amounts per category in first-seen order.
func (s *TransactionStore) CategoryBreakdown() []entity.CategoryTotal {
	return CategoryBreakdown(s.All())
}

// persistLocked writes the whole collection. Failures are logged and do not
// roll back the in-memory mutation. Callers must hold s.mu.
func (s *TransactionStore) persistLocked(ctx context.Context) {
	if s.repo == nil {
		return
	}

	if err := s.repo.SaveAll(context.WithoutCancel(ctx), s.transactions); err != nil {
		slog.Error("Failed to persist transactions",
			"error", err,
			"count", len(s.transactions),
		)
	}
}

func copyTransaction(tx *entity.Transaction) *entity.Transaction {
	c := *tx
	return &c
}
