// Package detect implements the four behavioral-spending detectors. Each
// detector is a pure function over the full transaction collection; they are
// independent and may run in any order. Absence of a pattern is an empty
// result, never an error.
package detect

import (
	"math"
	"sort"

	"github.com/spendo-dev/spendo/internal/model"
)

// Thresholds controls when each detector flags a pattern. Severity cutoffs
// are included so the config file can tune the whole rule in one place.
type Thresholds struct {
	PriceMinIncrease   float64 `yaml:"price_min_increase"`
	PriceMinPercent    float64 `yaml:"price_min_percent"`
	PriceHighPercent   float64 `yaml:"price_high_percent"`
	SpikeMultiplier    float64 `yaml:"spike_multiplier"`
	SpikeFloor         float64 `yaml:"spike_floor"`
	SpikeHighMult      float64 `yaml:"spike_high_multiplier"`
	FreqMinVisits      int     `yaml:"freq_min_visits"`
	FreqGrowth         float64 `yaml:"freq_growth"`
	FreqHighVisits     int     `yaml:"freq_high_visits"`
	ShiftMinMove       float64 `yaml:"shift_min_move"`
	ShiftPairTolerance float64 `yaml:"shift_pair_tolerance"`
}

// DefaultThresholds returns the standard detector tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PriceMinIncrease:   1,
		PriceMinPercent:    3,
		PriceHighPercent:   20,
		SpikeMultiplier:    2,
		SpikeFloor:         30,
		SpikeHighMult:      4,
		FreqMinVisits:      5,
		FreqGrowth:         1.5,
		FreqHighVisits:     8,
		ShiftMinMove:       50,
		ShiftPairTolerance: 100,
	}
}

// All runs the four detectors and concatenates their results in canonical
// order: price increases, spikes, frequency increases, category shifts.
func All(txns []model.Transaction, th Thresholds) []model.Detection {
	var out []model.Detection
	out = append(out, SubscriptionPriceIncreases(txns, th)...)
	out = append(out, SpendingSpikes(txns, th)...)
	out = append(out, FrequencyIncreases(txns, th)...)
	out = append(out, CategoryShifts(txns, th)...)
	return out
}

// merchantGroups groups expense transactions by clean merchant name, keeping
// merchants in first-seen order so output is deterministic.
type merchantGroups struct {
	order []string
	byKey map[string][]model.Transaction
}

func groupExpensesByMerchant(txns []model.Transaction) merchantGroups {
	g := merchantGroups{byKey: make(map[string][]model.Transaction)}
	for _, tx := range txns {
		if !tx.IsExpense() {
			continue
		}
		if _, ok := g.byKey[tx.MerchantClean]; !ok {
			g.order = append(g.order, tx.MerchantClean)
		}
		g.byKey[tx.MerchantClean] = append(g.byKey[tx.MerchantClean], tx)
	}
	return g
}

// SubscriptionPriceIncreases compares the chronologically first and last
// charge per merchant and flags stealth increases.
func SubscriptionPriceIncreases(txns []model.Transaction, th Thresholds) []model.Detection {
	var results []model.Detection
	groups := groupExpensesByMerchant(txns)

	for _, merchant := range groups.order {
		group := groups.byKey[merchant]
		if len(group) < 2 {
			continue
		}

		sorted := make([]model.Transaction, len(group))
		copy(sorted, group)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.Before(sorted[j].Date)
		})

		oldAmount := math.Abs(sorted[0].Amount)
		newAmount := math.Abs(sorted[len(sorted)-1].Amount)
		increase := newAmount - oldAmount
		increasePercent := increase / oldAmount * 100

		if increasePercent > th.PriceMinPercent && increase > th.PriceMinIncrease {
			severity := model.SeverityMedium
			if increasePercent > th.PriceHighPercent {
				severity = model.SeverityHigh
			}
			results = append(results, model.Detection{
				Type:       model.TypeSubscriptionPriceIncrease,
				Severity:   severity,
				Merchant:   merchant,
				Confidence: 0.85,
				Data: model.PriceIncreaseData{
					OldValue:        oldAmount,
					NewValue:        newAmount,
					Increase:        increase,
					IncreasePercent: increasePercent,
					YearlyImpact:    increase * 12,
				},
			})
		}
	}
	return results
}

// SpendingSpikes flags transactions far above a merchant's median charge.
// Multiple spikes at the same merchant are each reported.
func SpendingSpikes(txns []model.Transaction, th Thresholds) []model.Detection {
	var results []model.Detection
	groups := groupExpensesByMerchant(txns)

	for _, merchant := range groups.order {
		group := groups.byKey[merchant]
		if len(group) < 2 {
			continue
		}

		amounts := make([]float64, len(group))
		for i, tx := range group {
			amounts[i] = math.Abs(tx.Amount)
		}
		sort.Float64s(amounts)
		median := amounts[len(amounts)/2]

		for _, tx := range group {
			amount := math.Abs(tx.Amount)
			if amount > median*th.SpikeMultiplier && amount > th.SpikeFloor {
				severity := model.SeverityMedium
				if amount > median*th.SpikeHighMult {
					severity = model.SeverityHigh
				}
				results = append(results, model.Detection{
					Type:       model.TypeSpendingSpike,
					Severity:   severity,
					Merchant:   merchant,
					Confidence: 0.9,
					Data: model.SpikeData{
						Baseline:   median,
						Current:    amount,
						Multiplier: amount / median,
						Date:       tx.Date,
					},
				})
			}
		}
	}
	return results
}

// splitHalves sorts transactions chronologically and splits the expense rows
// at the midpoint index. The split is structural, not calendar-aligned.
func splitHalves(txns []model.Transaction) (first, second []model.Transaction) {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	midpoint := len(sorted) / 2
	for i, tx := range sorted {
		if !tx.IsExpense() {
			continue
		}
		if i < midpoint {
			first = append(first, tx)
		} else {
			second = append(second, tx)
		}
	}
	return first, second
}

// FrequencyIncreases flags merchants visited markedly more often in the
// second half of the window than the first.
func FrequencyIncreases(txns []model.Transaction, th Thresholds) []model.Detection {
	var results []model.Detection
	if len(txns) == 0 {
		return results
	}

	first, second := splitHalves(txns)

	firstCounts := make(map[string]int)
	for _, tx := range first {
		firstCounts[tx.MerchantClean]++
	}

	secondCounts := make(map[string]int)
	var secondOrder []string
	secondTotals := make(map[string]float64)
	for _, tx := range second {
		if _, ok := secondCounts[tx.MerchantClean]; !ok {
			secondOrder = append(secondOrder, tx.MerchantClean)
		}
		secondCounts[tx.MerchantClean]++
		secondTotals[tx.MerchantClean] += math.Abs(tx.Amount)
	}

	for _, merchant := range secondOrder {
		count := secondCounts[merchant]
		prev := firstCounts[merchant]
		if count >= th.FreqMinVisits && float64(count) >= float64(prev)*th.FreqGrowth {
			severity := model.SeverityMedium
			if count >= th.FreqHighVisits {
				severity = model.SeverityHigh
			}
			results = append(results, model.Detection{
				Type:       model.TypeFrequencyIncrease,
				Severity:   severity,
				Merchant:   merchant,
				Confidence: 0.8,
				Data: model.FrequencyData{
					Frequency:         count,
					PreviousFrequency: prev,
					Total:             secondTotals[merchant],
				},
			})
		}
	}
	return results
}

// CategoryShifts pairs a category whose spend dropped with another whose
// spend rose by a comparable amount over the same window. Quadratic in the
// number of categories, which stays in the tens.
func CategoryShifts(txns []model.Transaction, th Thresholds) []model.Detection {
	var results []model.Detection
	if len(txns) == 0 {
		return results
	}

	first, second := splitHalves(txns)

	firstTotals := make(map[string]float64)
	var firstOrder []string
	for _, tx := range first {
		if _, ok := firstTotals[tx.Category]; !ok {
			firstOrder = append(firstOrder, tx.Category)
		}
		firstTotals[tx.Category] += math.Abs(tx.Amount)
	}

	secondTotals := make(map[string]float64)
	var secondOrder []string
	for _, tx := range second {
		if _, ok := secondTotals[tx.Category]; !ok {
			secondOrder = append(secondOrder, tx.Category)
		}
		secondTotals[tx.Category] += math.Abs(tx.Amount)
	}

	for _, from := range firstOrder {
		decrease := firstTotals[from] - secondTotals[from]
		if decrease <= th.ShiftMinMove {
			continue
		}
		for _, to := range secondOrder {
			if to == from {
				continue
			}
			increase := secondTotals[to] - firstTotals[to]
			if increase > th.ShiftMinMove && math.Abs(increase-decrease) < th.ShiftPairTolerance {
				results = append(results, model.Detection{
					Type:       model.TypeCategoryShift,
					Severity:   model.SeverityMedium,
					Confidence: 0.7,
					Data: model.CategoryShiftData{
						FromCategory:   from,
						ToCategory:     to,
						DecreaseAmount: decrease,
						IncreaseAmount: increase,
						NetChange:      increase - decrease,
					},
				})
			}
		}
	}
	return results
}
