package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spendo-dev/spendo/internal/model"
)

// MemoryStore implements Store with in-memory maps. Used in tests and when
// no Firestore project is configured.
type MemoryStore struct {
	mu sync.RWMutex

	transactions map[string]model.Transaction
	insights     map[string]model.Insight

	now func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[string]model.Transaction),
		insights:     make(map[string]model.Insight),
		now:          time.Now,
	}
}

func (m *MemoryStore) CreateTransactions(ctx context.Context, txns []model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, tx := range txns {
		if tx.ID == "" {
			tx.ID = uuid.New().String()
		}
		m.transactions[tx.ID] = tx
	}
	return nil
}

func (m *MemoryStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	txns := make([]model.Transaction, 0, len(m.transactions))
	for _, tx := range m.transactions {
		txns = append(txns, tx)
	}
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		return txns[i].ID < txns[j].ID
	})
	return txns, nil
}

func (m *MemoryStore) CreateInsights(ctx context.Context, insights []model.Insight) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ins := range insights {
		if ins.ID == "" {
			ins.ID = uuid.New().String()
		}
		if ins.CreatedAt.IsZero() {
			ins.CreatedAt = m.now()
		}
		m.insights[ins.ID] = ins
	}
	return nil
}

func (m *MemoryStore) ListInsights(ctx context.Context, limit int) ([]model.Insight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	insights := make([]model.Insight, 0, len(m.insights))
	for _, ins := range m.insights {
		insights = append(insights, ins)
	}
	sort.SliceStable(insights, func(i, j int) bool {
		if !insights[i].CreatedAt.Equal(insights[j].CreatedAt) {
			return insights[i].CreatedAt.After(insights[j].CreatedAt)
		}
		return insights[i].ID < insights[j].ID
	})
	if limit > 0 && len(insights) > limit {
		insights = insights[:limit]
	}
	return insights, nil
}
