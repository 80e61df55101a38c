package insights

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spendo-dev/spendo/internal/detect"
	"github.com/spendo-dev/spendo/internal/ingest"
	"github.com/spendo-dev/spendo/internal/lifecycle"
	"github.com/spendo-dev/spendo/internal/model"
	"github.com/spendo-dev/spendo/internal/store"
)

// Engine runs the full pipeline: CSV text to transactions to detections to
// the filtered insight feed, persisting both ends in the record store. The
// computation itself is synchronous and pure; only the store calls touch
// the outside world.
type Engine struct {
	store     store.Store
	lifecycle *lifecycle.Store
	ingestor  *ingest.Ingestor
	th        detect.Thresholds
	opts      Options
	log       zerolog.Logger
}

// NewEngine wires the pipeline. store may be nil when nothing should be
// persisted durably.
func NewEngine(st store.Store, lc *lifecycle.Store, log zerolog.Logger, th detect.Thresholds, opts Options) *Engine {
	return &Engine{
		store:     st,
		lifecycle: lc,
		ingestor:  ingest.New(log),
		th:        th,
		opts:      opts,
		log:       log,
	}
}

// ImportResult is what one import run produces.
type ImportResult struct {
	Transactions []model.Transaction `json:"transactions"`
	Insights     []model.Insight     `json:"insights"`
}

// Analyze runs the detectors over a transaction collection and returns the
// ranked feed with previously-handled insights filtered out.
func (e *Engine) Analyze(txns []model.Transaction) []model.Insight {
	detections := detect.All(txns, e.th)
	built := Build(detections, e.opts)
	visible := e.lifecycle.FilterVisible(built)

	e.log.Debug().
		Int("transactions", len(txns)).
		Int("detections", len(detections)).
		Int("visible", len(visible)).
		Msg("analysis run complete")
	return visible
}

// ImportCSV ingests raw CSV text, persists the transactions and generated
// insights, and returns both. Ingestion failures abort the whole import.
func (e *Engine) ImportCSV(ctx context.Context, csvText string) (*ImportResult, error) {
	txns, err := e.ingestor.Parse(csvText)
	if err != nil {
		return nil, err
	}

	if e.store != nil {
		if err := e.store.CreateTransactions(ctx, txns); err != nil {
			return nil, fmt.Errorf("storing transactions: %w", err)
		}
	}

	visible := e.Analyze(txns)

	if e.store != nil {
		if err := e.store.CreateInsights(ctx, visible); err != nil {
			return nil, fmt.Errorf("storing insights: %w", err)
		}
	}

	e.log.Info().
		Int("transactions", len(txns)).
		Int("insights", len(visible)).
		Msg("import complete")
	return &ImportResult{Transactions: txns, Insights: visible}, nil
}

// DashboardData is the stored view: all transactions plus the most recent
// insights.
type DashboardData struct {
	Transactions []model.Transaction `json:"transactions"`
	Insights     []model.Insight     `json:"insights"`
}

// recentInsightLimit matches the dashboard's feed length.
const recentInsightLimit = 5

// Dashboard reads back what the record store holds.
func (e *Engine) Dashboard(ctx context.Context) (*DashboardData, error) {
	if e.store == nil {
		return &DashboardData{}, nil
	}

	txns, err := e.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	ins, err := e.store.ListInsights(ctx, recentInsightLimit)
	if err != nil {
		return nil, fmt.Errorf("listing insights: %w", err)
	}
	return &DashboardData{Transactions: txns, Insights: ins}, nil
}
