package model

import "time"

// Insight is a user-facing message derived from a detection. Insights are
// regenerated on every analysis run; only their lifecycle state is persisted,
// keyed by the fingerprint in ID.
type Insight struct {
	ID                   string        `json:"id"`
	Type                 InsightType   `json:"type"`
	Severity             Severity      `json:"severity"`
	Merchant             string        `json:"merchant,omitempty"`
	Message              string        `json:"message"`
	Detail               string        `json:"detail,omitempty"`
	Data                 DetectionData `json:"data,omitempty"`
	RequiresConfirmation bool          `json:"requiresConfirmation,omitempty"`
	ConfirmationPrompt   string        `json:"confirmationPrompt,omitempty"`
	CreatedAt            time.Time     `json:"createdAt,omitempty"`
}
