package model

import "time"

// InsightType enumerates the behavioral patterns the detectors surface.
type InsightType string

const (
	TypeSubscriptionPriceIncrease InsightType = "SUBSCRIPTION_PRICE_INCREASE"
	TypeSpendingSpike             InsightType = "SPENDING_SPIKE"
	TypeFrequencyIncrease         InsightType = "FREQUENCY_INCREASE"
	TypeCategoryShift             InsightType = "CATEGORY_SHIFT"
)

// Severity ranks how urgent a detection is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank returns the sort rank of a severity. Lower sorts first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// DetectionData is the kind-specific payload of a detection. Exactly one
// concrete type exists per InsightType.
type DetectionData interface {
	isDetectionData()
}

// PriceIncreaseData describes a subscription price increase.
type PriceIncreaseData struct {
	OldValue        float64 `json:"oldValue"`
	NewValue        float64 `json:"newValue"`
	Increase        float64 `json:"increase"`
	IncreasePercent float64 `json:"increasePercent"`
	YearlyImpact    float64 `json:"yearlyImpact"`
}

// SpikeData describes a single transaction far above the merchant baseline.
type SpikeData struct {
	Baseline   float64   `json:"baseline"`
	Current    float64   `json:"current"`
	Multiplier float64   `json:"multiplier"`
	Date       time.Time `json:"date"`
}

// FrequencyData describes merchant visit-count creep between the two halves
// of the observation window.
type FrequencyData struct {
	Frequency         int     `json:"frequency"`
	PreviousFrequency int     `json:"previousFrequency"`
	Total             float64 `json:"total"`
}

// CategoryShiftData describes spending moving from one category to another.
type CategoryShiftData struct {
	FromCategory   string  `json:"fromCategory"`
	ToCategory     string  `json:"toCategory"`
	DecreaseAmount float64 `json:"decreaseAmount"`
	IncreaseAmount float64 `json:"increaseAmount"`
	NetChange      float64 `json:"netChange"`
}

func (PriceIncreaseData) isDetectionData() {}
func (SpikeData) isDetectionData()         {}
func (FrequencyData) isDetectionData()     {}
func (CategoryShiftData) isDetectionData() {}

// Detection is the transient output of one detector invocation. Confidence
// is an informational heuristic weight; nothing filters or sorts on it.
type Detection struct {
	Type       InsightType
	Severity   Severity
	Merchant   string
	Confidence float64
	Data       DetectionData
}
