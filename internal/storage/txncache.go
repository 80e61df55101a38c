package storage

import (
	"encoding/json"
	"fmt"

	"github.com/spendo-dev/spendo/internal/model"
)

// txnCacheKey namespaces the raw-transaction cache within the backend.
const txnCacheKey = "spendo_transactions"

// TxnCache persists the most recent transaction collection so insights can
// be regenerated without re-uploading. Dates round-trip as ISO-8601 strings.
type TxnCache struct {
	backend Backend
}

// NewTxnCache wraps a backend. A nil backend disables persistence.
func NewTxnCache(backend Backend) *TxnCache {
	return &TxnCache{backend: backend}
}

// Save overwrites the cached collection.
func (c *TxnCache) Save(txns []model.Transaction) error {
	if c.backend == nil {
		return nil
	}
	data, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}
	return c.backend.Set(txnCacheKey, data)
}

// Load returns the cached collection. Absent or corrupt data yields an
// empty slice, never an error.
func (c *TxnCache) Load() []model.Transaction {
	if c.backend == nil {
		return nil
	}
	data, ok, err := c.backend.Get(txnCacheKey)
	if err != nil || !ok {
		return nil
	}
	var txns []model.Transaction
	if err := json.Unmarshal(data, &txns); err != nil {
		return nil
	}
	return txns
}

// Clear drops the cached collection.
func (c *TxnCache) Clear() error {
	if c.backend == nil {
		return nil
	}
	return c.backend.Delete(txnCacheKey)
}
