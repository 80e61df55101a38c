package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendo-dev/spendo/internal/model"
)

func TestFingerprintStableAcrossRuns(t *testing.T) {
	data := model.PriceIncreaseData{
		OldValue:        15.99,
		NewValue:        22.99,
		Increase:        7.00,
		IncreasePercent: 43.8,
		YearlyImpact:    84.00,
	}

	first := Fingerprint(model.TypeSubscriptionPriceIncrease, "Netflix", data)
	second := Fingerprint(model.TypeSubscriptionPriceIncrease, "Netflix", data)
	assert.Equal(t, first, second)
	assert.Contains(t, first, string(model.TypeSubscriptionPriceIncrease)+"-")
}

func TestFingerprintDistinguishesData(t *testing.T) {
	base := model.PriceIncreaseData{OldValue: 15.99, NewValue: 22.99}
	bumped := model.PriceIncreaseData{OldValue: 15.99, NewValue: 24.99}

	a := Fingerprint(model.TypeSubscriptionPriceIncrease, "Netflix", base)
	b := Fingerprint(model.TypeSubscriptionPriceIncrease, "Netflix", bumped)
	c := Fingerprint(model.TypeSubscriptionPriceIncrease, "Spotify", base)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFingerprintSpikeIncludesDate(t *testing.T) {
	day1 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	a := Fingerprint(model.TypeSpendingSpike, "Starbucks", model.SpikeData{Current: 85.00, Date: day1})
	b := Fingerprint(model.TypeSpendingSpike, "Starbucks", model.SpikeData{Current: 85.00, Date: day2})
	assert.NotEqual(t, a, b, "same amount on different days is a different spike")
}

func TestFingerprintEmptyMerchant(t *testing.T) {
	a := Fingerprint(model.TypeFrequencyIncrease, "", model.FrequencyData{Frequency: 6})
	b := Fingerprint(model.TypeFrequencyIncrease, "", model.FrequencyData{Frequency: 6})
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestBuildRendersTemplates(t *testing.T) {
	detections := []model.Detection{
		{
			Type:     model.TypeSubscriptionPriceIncrease,
			Severity: model.SeverityHigh,
			Merchant: "Netflix",
			Data: model.PriceIncreaseData{
				OldValue: 15.99, NewValue: 22.99, Increase: 7.00,
				IncreasePercent: 43.8, YearlyImpact: 84.00,
			},
		},
		{
			Type:     model.TypeSpendingSpike,
			Severity: model.SeverityHigh,
			Merchant: "Starbucks",
			Data: model.SpikeData{
				Baseline: 12.50, Current: 85.00, Multiplier: 6.8,
				Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			Type:     model.TypeFrequencyIncrease,
			Severity: model.SeverityMedium,
			Merchant: "Uber Eats",
			Data:     model.FrequencyData{Frequency: 10, PreviousFrequency: 2, Total: 280.00},
		},
		{
			Type:     model.TypeCategoryShift,
			Severity: model.SeverityMedium,
			Data: model.CategoryShiftData{
				FromCategory: "Dining", ToCategory: "Food Delivery",
				DecreaseAmount: 150, IncreaseAmount: 140, NetChange: 10,
			},
		},
	}

	insights := Build(detections, DefaultOptions())
	require.Len(t, insights, 4)

	assert.Equal(t, "Netflix increased from $15.99 to $22.99", insights[0].Message)
	assert.Equal(t, "That's $84 more per year", insights[0].Detail)
	assert.Equal(t, "Unusual charge at Starbucks: $85.00", insights[1].Message)
	assert.Equal(t, "Your typical amount is $12.50 (6.8x higher)", insights[1].Detail)
	assert.Equal(t, "Uber Eats: 10 visits recently", insights[2].Message)
	assert.Equal(t, "Previously 2 visits. Total: $280.00", insights[2].Detail)
	assert.Equal(t, "Spending shifted from Dining to Food Delivery", insights[3].Message)
	assert.Equal(t, "Dining down $150, Food Delivery up $140", insights[3].Detail)

	for _, ins := range insights {
		assert.NotEmpty(t, ins.ID)
	}
}

func TestBuildCapsSpikes(t *testing.T) {
	var detections []model.Detection
	for i := 0; i < 8; i++ {
		detections = append(detections, model.Detection{
			Type:     model.TypeSpendingSpike,
			Severity: model.SeverityHigh,
			Merchant: fmt.Sprintf("Merchant %d", i),
			Data: model.SpikeData{
				Baseline: 10, Current: 100, Multiplier: 10,
				Date: time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
			},
		})
	}

	insights := Build(detections, DefaultOptions())
	require.Len(t, insights, 5)
	// First five in, the rest dropped.
	assert.Equal(t, "Merchant 0", insights[0].Merchant)
	assert.Equal(t, "Merchant 4", insights[4].Merchant)
}

func TestBuildCapsShifts(t *testing.T) {
	detections := []model.Detection{
		{Type: model.TypeCategoryShift, Severity: model.SeverityMedium,
			Data: model.CategoryShiftData{FromCategory: "Dining", ToCategory: "Food Delivery"}},
		{Type: model.TypeCategoryShift, Severity: model.SeverityMedium,
			Data: model.CategoryShiftData{FromCategory: "Shopping", ToCategory: "Entertainment"}},
	}

	insights := Build(detections, DefaultOptions())
	require.Len(t, insights, 1)
	assert.Contains(t, insights[0].Message, "Dining")
}

func TestBuildSortsBySeverityStable(t *testing.T) {
	detections := []model.Detection{
		{Type: model.TypeFrequencyIncrease, Severity: model.SeverityMedium, Merchant: "A",
			Data: model.FrequencyData{Frequency: 5, PreviousFrequency: 2, Total: 50}},
		{Type: model.TypeSpendingSpike, Severity: model.SeverityHigh, Merchant: "B",
			Data: model.SpikeData{Baseline: 10, Current: 100, Multiplier: 10}},
		{Type: model.TypeFrequencyIncrease, Severity: model.SeverityMedium, Merchant: "C",
			Data: model.FrequencyData{Frequency: 6, PreviousFrequency: 2, Total: 60}},
	}

	insights := Build(detections, DefaultOptions())
	require.Len(t, insights, 3)
	assert.Equal(t, "B", insights[0].Merchant)
	assert.Equal(t, "A", insights[1].Merchant)
	assert.Equal(t, "C", insights[2].Merchant)
}

func TestCalculateMerchantStats(t *testing.T) {
	txns := []model.Transaction{
		{MerchantClean: "Starbucks", Amount: -12.50},
		{MerchantClean: "Starbucks", Amount: -11.50},
		{MerchantClean: "Safeway", Amount: -65.00},
		{MerchantClean: "Paycheck", Amount: 3200.00}, // income, excluded
	}

	stats := CalculateMerchantStats(txns)
	require.Len(t, stats, 2)

	assert.Equal(t, "Safeway", stats[0].Merchant)
	assert.InDelta(t, 65.00, stats[0].TotalSpent, 0.001)
	assert.Equal(t, "Starbucks", stats[1].Merchant)
	assert.InDelta(t, 24.00, stats[1].TotalSpent, 0.001)
	assert.Equal(t, 2, stats[1].TransactionCount)
	assert.InDelta(t, 12.00, stats[1].AverageSpend, 0.001)
}

func TestHabitualMerchantNotes(t *testing.T) {
	stats := []MerchantStats{
		{Merchant: "Whole Foods", TotalSpent: 800, TransactionCount: 12, AverageSpend: 66.67},
		{Merchant: "Starbucks", TotalSpent: 60, TransactionCount: 12, AverageSpend: 5.00},
		{Merchant: "Best Buy", TotalSpent: 400, TransactionCount: 2, AverageSpend: 200.00},
	}

	notes := HabitualMerchantNotes(stats)
	require.Len(t, notes, 1)
	assert.Equal(t, "narrator:whole foods", notes[0].ID)
	assert.Equal(t, "Whole Foods", notes[0].Merchant)
	assert.Contains(t, notes[0].Detail, "$66.67")
}
