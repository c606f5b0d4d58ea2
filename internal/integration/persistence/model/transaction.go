package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/domain/entity"
	"github.com/finz/backend/internal/domain/valueobject"
)

// TransactionRecord is the serialized form of a transaction inside a slot.
type TransactionRecord struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
	Date     string  `json:"date"`
}

// ToEntity converts a TransactionRecord to a domain Transaction entity.
func (r *TransactionRecord) ToEntity() (*entity.Transaction, error) {
	date, err := ParseTimestamp(r.Date)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", r.ID, err)
	}

	return &entity.Transaction{
		ID:       r.ID,
		Amount:   decimal.NewFromFloat(r.Amount),
		Type:     entity.TransactionType(r.Type),
		Category: valueobject.Category(r.Category),
		Note:     r.Note,
		Date:     date,
	}, nil
}

// TransactionRecordFromEntity creates a TransactionRecord from a domain Transaction entity.
func TransactionRecordFromEntity(tx *entity.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:       tx.ID,
		Amount:   tx.Amount.InexactFloat64(),
		Type:     string(tx.Type),
		Category: tx.Category.String(),
		Note:     tx.Note,
		Date:     FormatTimestamp(tx.Date),
	}
}

// timestampLayouts are tried in order when decoding stored dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses an ISO-8601 timestamp or a bare calendar date.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// FormatTimestamp renders t as an ISO-8601 UTC timestamp with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
