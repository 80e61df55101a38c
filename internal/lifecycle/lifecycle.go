// Package lifecycle tracks what the user has done with each insight so the
// feed stops resurfacing things they have already dealt with. State is keyed
// by insight fingerprint and survives regeneration of the insights
// themselves.
package lifecycle

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spendo-dev/spendo/internal/model"
	"github.com/spendo-dev/spendo/internal/storage"
)

// Status is the lifecycle state of one insight. An insight with no stored
// state is implicitly new.
type Status string

const (
	StatusNew          Status = "new"
	StatusAcknowledged Status = "acknowledged"
	StatusSnoozed      Status = "snoozed"
	StatusHidden       Status = "hidden"
)

// DefaultSnoozeDays is the horizon applied when a caller snoozes without an
// explicit expiry.
const DefaultSnoozeDays = 90

// stateKey namespaces lifecycle state within the storage backend.
const stateKey = "spendo_insight_states"

// State records the last user action on an insight. One row per
// fingerprint; every save overwrites.
type State struct {
	InsightID   string     `json:"insightId"`
	Status      Status     `json:"status"`
	Timestamp   time.Time  `json:"timestamp"`
	SnoozeUntil *time.Time `json:"snoozeUntil,omitempty"`
}

// Store persists insight lifecycle state in a key-value backend. A nil
// backend makes every operation a no-op; nothing here ever fails because
// persistence is unavailable.
type Store struct {
	backend storage.Backend
	now     func() time.Time
}

// NewStore creates a lifecycle store over the given backend.
func NewStore(backend storage.Backend) *Store {
	return &Store{backend: backend, now: time.Now}
}

// Save records status for a fingerprint, overwriting any prior entry and
// stamping the current time. snoozeUntil only matters for StatusSnoozed.
func (s *Store) Save(insightID string, status Status, snoozeUntil *time.Time) error {
	if s.backend == nil {
		return nil
	}

	states := s.Load()
	states[insightID] = State{
		InsightID:   insightID,
		Status:      status,
		Timestamp:   s.now(),
		SnoozeUntil: snoozeUntil,
	}

	list := make([]State, 0, len(states))
	for _, st := range states {
		list = append(list, st)
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding insight states: %w", err)
	}
	return s.backend.Set(stateKey, data)
}

// Snooze hides an insight for the default horizon.
func (s *Store) Snooze(insightID string) error {
	return s.SnoozeFor(insightID, DefaultSnoozeDays)
}

// SnoozeFor hides an insight for the given number of days.
func (s *Store) SnoozeFor(insightID string, days int) error {
	if days <= 0 {
		days = DefaultSnoozeDays
	}
	until := s.now().AddDate(0, 0, days)
	return s.Save(insightID, StatusSnoozed, &until)
}

// Load returns the full state map. Missing backend or corrupt data yields
// an empty map.
func (s *Store) Load() map[string]State {
	states := make(map[string]State)
	if s.backend == nil {
		return states
	}

	data, ok, err := s.backend.Get(stateKey)
	if err != nil || !ok {
		return states
	}
	var list []State
	if err := json.Unmarshal(data, &list); err != nil {
		return states
	}
	for _, st := range list {
		states[st.InsightID] = st
	}
	return states
}

// ShouldShow reports whether an insight is currently visible. Snooze expiry
// is re-evaluated on every call; the stored state is never mutated here.
func (s *Store) ShouldShow(insightID string) bool {
	st, ok := s.Load()[insightID]
	if !ok || st.Status == StatusNew {
		return true
	}

	switch st.Status {
	case StatusHidden, StatusAcknowledged:
		return false
	case StatusSnoozed:
		if st.SnoozeUntil == nil {
			return true
		}
		return s.now().After(*st.SnoozeUntil)
	default:
		return true
	}
}

// FilterVisible drops insights the user has hidden, acknowledged, or
// snoozed (until the snooze expires).
func (s *Store) FilterVisible(insights []model.Insight) []model.Insight {
	states := s.Load()
	visible := make([]model.Insight, 0, len(insights))
	for _, ins := range insights {
		st, ok := states[ins.ID]
		if ok && !visibleUnder(st, s.now()) {
			continue
		}
		visible = append(visible, ins)
	}
	return visible
}

func visibleUnder(st State, now time.Time) bool {
	switch st.Status {
	case StatusHidden, StatusAcknowledged:
		return false
	case StatusSnoozed:
		return st.SnoozeUntil == nil || now.After(*st.SnoozeUntil)
	default:
		return true
	}
}
