// Package store defines the durable record store the analysis pipeline
// appends to and queries from. The core treats it as an unordered sink and
// source; it is not part of the core's consistency guarantees.
package store

import (
	"context"

	"github.com/spendo-dev/spendo/internal/model"
)

// Store is the record-store contract: bulk appends plus simple queries.
type Store interface {
	// CreateTransactions appends a batch of parsed transactions.
	CreateTransactions(ctx context.Context, txns []model.Transaction) error
	// ListTransactions returns all stored transactions, newest first.
	ListTransactions(ctx context.Context) ([]model.Transaction, error)

	// CreateInsights appends a batch of generated insights, stamping
	// CreatedAt when unset. Only the user-facing fields are persisted; the
	// detection payload stays in memory.
	CreateInsights(ctx context.Context, insights []model.Insight) error
	// ListInsights returns the most recently created insights, newest
	// first, at most limit entries.
	ListInsights(ctx context.Context, limit int) ([]model.Insight, error)
}
