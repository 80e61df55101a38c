// Package insights turns raw detections into the ranked, de-duplicated,
// user-facing insight feed.
package insights

import (
	"fmt"
	"sort"

	"github.com/spendo-dev/spendo/internal/model"
)

// Options caps how many insights of the noisier kinds one run may emit.
type Options struct {
	MaxSpikes int `yaml:"max_spikes"`
	MaxShifts int `yaml:"max_shifts"`
}

// DefaultOptions returns the standard caps: spikes are frequent enough to
// drown the feed and shifts are pairwise-quadratic, so both are limited.
// Price and frequency detections pass through uncapped.
func DefaultOptions() Options {
	return Options{MaxSpikes: 5, MaxShifts: 1}
}

// Build maps detections to insights, applies per-kind volume caps, and
// sorts by severity. The sort is stable: within a severity band, insertion
// order (subscription, spike, frequency, shift) is preserved.
func Build(detections []model.Detection, opts Options) []model.Insight {
	insights := make([]model.Insight, 0, len(detections))
	spikes, shifts := 0, 0

	for _, d := range detections {
		switch d.Type {
		case model.TypeSpendingSpike:
			if spikes >= opts.MaxSpikes {
				continue
			}
			spikes++
		case model.TypeCategoryShift:
			if shifts >= opts.MaxShifts {
				continue
			}
			shifts++
		}

		message, detail := render(d)
		insights = append(insights, model.Insight{
			ID:       Fingerprint(d.Type, d.Merchant, d.Data),
			Type:     d.Type,
			Severity: d.Severity,
			Merchant: d.Merchant,
			Message:  message,
			Detail:   detail,
			Data:     d.Data,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Severity.Rank() < insights[j].Severity.Rank()
	})
	return insights
}

// render produces the message and detail sentences for one detection.
func render(d model.Detection) (message, detail string) {
	switch data := d.Data.(type) {
	case model.PriceIncreaseData:
		message = fmt.Sprintf("%s increased from $%.2f to $%.2f", d.Merchant, data.OldValue, data.NewValue)
		detail = fmt.Sprintf("That's $%.0f more per year", data.YearlyImpact)
	case model.SpikeData:
		message = fmt.Sprintf("Unusual charge at %s: $%.2f", d.Merchant, data.Current)
		detail = fmt.Sprintf("Your typical amount is $%.2f (%.1fx higher)", data.Baseline, data.Multiplier)
	case model.FrequencyData:
		message = fmt.Sprintf("%s: %d visits recently", d.Merchant, data.Frequency)
		detail = fmt.Sprintf("Previously %d visits. Total: $%.2f", data.PreviousFrequency, data.Total)
	case model.CategoryShiftData:
		message = fmt.Sprintf("Spending shifted from %s to %s", data.FromCategory, data.ToCategory)
		detail = fmt.Sprintf("%s down $%.0f, %s up $%.0f",
			data.FromCategory, data.DecreaseAmount, data.ToCategory, data.IncreaseAmount)
	}
	return message, detail
}
