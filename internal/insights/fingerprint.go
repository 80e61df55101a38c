package insights

import (
	"strconv"
	"strings"

	"github.com/spendo-dev/spendo/internal/model"
)

// Fingerprint derives a stable id for an insight from its type, merchant,
// and the detection's distinguishing fields. Two runs over identical data
// must produce identical fingerprints so lifecycle state (hide, snooze,
// acknowledge) survives regeneration. Changing the underlying numbers
// deliberately produces a new fingerprint, which resurfaces the insight.
func Fingerprint(typ model.InsightType, merchant string, data model.DetectionData) string {
	if merchant == "" {
		merchant = "unknown"
	}

	var b strings.Builder
	b.WriteString(string(typ))
	b.WriteByte('-')
	b.WriteString(merchant)

	switch d := data.(type) {
	case model.PriceIncreaseData:
		b.WriteByte('-')
		b.WriteString(formatNum(d.OldValue))
		b.WriteByte('-')
		b.WriteString(formatNum(d.NewValue))
	case model.SpikeData:
		b.WriteByte('-')
		b.WriteString(formatNum(d.Current))
		b.WriteByte('-')
		b.WriteString(strconv.FormatInt(d.Date.UnixMilli(), 10))
	case model.FrequencyData:
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(d.Frequency))
	case model.CategoryShiftData:
		// No distinguishing numeric fields; at most one shift is surfaced
		// per run, so all shifts share a fingerprint.
	}

	h := int64(hash32(b.String()))
	if h < 0 {
		h = -h
	}
	return string(typ) + "-" + strconv.FormatInt(h, 36)
}

// hash32 is a 32-bit string hash (h*31 + c with wraparound). Cheap,
// deterministic, and collision-resistant enough for a feed of tens of
// insights.
func hash32(s string) int32 {
	var h int32
	for _, r := range s {
		h = h<<5 - h + int32(r)
	}
	return h
}

// formatNum renders a float with the shortest exact representation so
// 15.99 fingerprints as "15.99", not "15.990000".
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
