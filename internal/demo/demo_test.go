package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendo-dev/spendo/internal/detect"
	"github.com/spendo-dev/spendo/internal/model"
)

func TestTransactionsTripEveryDetector(t *testing.T) {
	txns := Transactions()
	require.Len(t, txns, 27)

	for _, tx := range txns {
		assert.Equal(t, model.SourceDemo, tx.Source)
		assert.NotEmpty(t, tx.ID)
		assert.False(t, tx.Date.IsZero())
	}

	detections := detect.All(txns, detect.DefaultThresholds())
	seen := make(map[model.InsightType]bool)
	for _, d := range detections {
		seen[d.Type] = true
	}
	assert.True(t, seen[model.TypeSubscriptionPriceIncrease], "demo data should contain a price hike")
	assert.True(t, seen[model.TypeSpendingSpike], "demo data should contain a spike")
	assert.True(t, seen[model.TypeFrequencyIncrease], "demo data should contain a frequency creep")
	assert.True(t, seen[model.TypeCategoryShift], "demo data should contain a category shift")
}
