package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spendo-dev/spendo/internal/model"
)

// MerchantStats aggregates expense activity for one merchant. Amounts are
// absolute values of expense rows; income is excluded.
type MerchantStats struct {
	Merchant         string  `json:"merchant"`
	TotalSpent       float64 `json:"totalSpent"`
	TransactionCount int     `json:"transactionCount"`
	AverageSpend     float64 `json:"averageSpend"`
}

// habitualVisitThreshold and habitualSpendThreshold gate the habitual-
// merchant note: a merchant only earns one after enough visits at a
// meaningful average ticket.
const (
	habitualVisitThreshold = 10
	habitualSpendThreshold = 50.0
)

// CalculateMerchantStats aggregates expenses per clean merchant name,
// ordered by total spend descending.
func CalculateMerchantStats(txns []model.Transaction) []MerchantStats {
	byMerchant := make(map[string]*MerchantStats)
	for _, tx := range txns {
		if !tx.IsExpense() {
			continue
		}
		s, ok := byMerchant[tx.MerchantClean]
		if !ok {
			s = &MerchantStats{Merchant: tx.MerchantClean}
			byMerchant[tx.MerchantClean] = s
		}
		s.TotalSpent += math.Abs(tx.Amount)
		s.TransactionCount++
		s.AverageSpend = s.TotalSpent / float64(s.TransactionCount)
	}

	stats := make([]MerchantStats, 0, len(byMerchant))
	for _, s := range byMerchant {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalSpent != stats[j].TotalSpent {
			return stats[i].TotalSpent > stats[j].TotalSpent
		}
		return stats[i].Merchant < stats[j].Merchant
	})
	return stats
}

// HabitualMerchantNotes generates narrative insights for merchants the user
// visits habitually. These supplement the detector-driven feed and use a
// name-keyed id since no detection payload backs them.
func HabitualMerchantNotes(stats []MerchantStats) []model.Insight {
	var notes []model.Insight
	for _, s := range stats {
		if s.TransactionCount < habitualVisitThreshold || s.AverageSpend <= habitualSpendThreshold {
			continue
		}
		notes = append(notes, model.Insight{
			ID:       "narrator:" + strings.ToLower(s.Merchant),
			Type:     model.TypeFrequencyIncrease,
			Severity: model.SeverityMedium,
			Merchant: s.Merchant,
			Message:  fmt.Sprintf("You visit %s quite often", s.Merchant),
			Detail: fmt.Sprintf("Average spend is $%.2f across %d transactions.",
				s.AverageSpend, s.TransactionCount),
		})
	}
	return notes
}
