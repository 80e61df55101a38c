package insights

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendo-dev/spendo/internal/detect"
	"github.com/spendo-dev/spendo/internal/lifecycle"
	"github.com/spendo-dev/spendo/internal/model"
	"github.com/spendo-dev/spendo/internal/storage"
	"github.com/spendo-dev/spendo/internal/store"
)

const priceIncreaseCSV = `Date,Description,Amount
2025-01-15,NETFLIX.COM,-22.99
2024-12-15,NETFLIX.COM,-15.99
`

func newTestEngine(st store.Store, lc *lifecycle.Store) *Engine {
	return NewEngine(st, lc, zerolog.Nop(), detect.DefaultThresholds(), DefaultOptions())
}

func TestEngineImportCSV(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	lc := lifecycle.NewStore(storage.NewMemory())
	e := newTestEngine(st, lc)

	result, err := e.ImportCSV(ctx, priceIncreaseCSV)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	require.Len(t, result.Insights, 1)

	ins := result.Insights[0]
	assert.Equal(t, model.TypeSubscriptionPriceIncrease, ins.Type)
	assert.Equal(t, model.SeverityHigh, ins.Severity)
	assert.Equal(t, "Netflix", ins.Merchant)
	assert.Equal(t, "Netflix increased from $15.99 to $22.99", ins.Message)

	// Both sides persisted.
	dash, err := e.Dashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, dash.Transactions, 2)
	require.Len(t, dash.Insights, 1)
	assert.Equal(t, ins.ID, dash.Insights[0].ID)
}

func TestEngineAnalyzeRespectsLifecycle(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	lc := lifecycle.NewStore(storage.NewMemory())
	e := newTestEngine(st, lc)

	result, err := e.ImportCSV(ctx, priceIncreaseCSV)
	require.NoError(t, err)
	require.Len(t, result.Insights, 1)

	// Hiding the insight removes it from subsequent runs over the same data.
	require.NoError(t, lc.Save(result.Insights[0].ID, lifecycle.StatusHidden, nil))
	assert.Empty(t, e.Analyze(result.Transactions))
}

func TestEngineImportBadCSV(t *testing.T) {
	e := newTestEngine(store.NewMemoryStore(), lifecycle.NewStore(nil))

	_, err := e.ImportCSV(context.Background(), "not,a\nbank,statement\n")
	require.Error(t, err)
}

func TestEngineNilStore(t *testing.T) {
	e := newTestEngine(nil, lifecycle.NewStore(nil))

	result, err := e.ImportCSV(context.Background(), priceIncreaseCSV)
	require.NoError(t, err)
	assert.Len(t, result.Transactions, 2)

	dash, err := e.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dash.Transactions)
}
