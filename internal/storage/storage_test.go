package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendo-dev/spendo/internal/model"
)

func TestMemoryBackend(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("k", []byte(`{"a":1}`)))
	v, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(v))

	require.NoError(t, m.Delete("k"))
	_, ok, _ = m.Get("k")
	assert.False(t, ok)
}

func TestFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set("spendo_insight_states", []byte(`[]`)))
	v, ok, err := f.Get("spendo_insight_states")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(v))

	// Deleting twice is fine.
	require.NoError(t, f.Delete("spendo_insight_states"))
	require.NoError(t, f.Delete("spendo_insight_states"))

	_, ok, err = f.Get("spendo_insight_states")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileBackendSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set("../escape/attempt", []byte("x")))
	v, ok, err := f.Get("../escape/attempt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", string(v))
}

func TestTxnCacheRoundTrip(t *testing.T) {
	cache := NewTxnCache(NewMemory())

	txns := []model.Transaction{
		{
			ID:            "txn-1",
			Date:          time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
			MerchantRaw:   "Starbucks #4821",
			MerchantClean: "Starbucks",
			Amount:        -12.50,
			Category:      "Dining",
			Source:        model.SourceUpload,
		},
	}
	require.NoError(t, cache.Save(txns))

	got := cache.Load()
	require.Len(t, got, 1)
	assert.Equal(t, txns[0].ID, got[0].ID)
	assert.True(t, got[0].Date.Equal(txns[0].Date))
	assert.Equal(t, txns[0].Amount, got[0].Amount)

	require.NoError(t, cache.Clear())
	assert.Empty(t, cache.Load())
}

func TestTxnCacheToleratesCorruptData(t *testing.T) {
	backend := NewMemory()
	require.NoError(t, backend.Set("spendo_transactions", []byte("not json")))

	cache := NewTxnCache(backend)
	assert.Empty(t, cache.Load())
}

func TestTxnCacheNilBackendIsNoop(t *testing.T) {
	cache := NewTxnCache(nil)
	require.NoError(t, cache.Save([]model.Transaction{{ID: "x"}}))
	assert.Empty(t, cache.Load())
	require.NoError(t, cache.Clear())
}
