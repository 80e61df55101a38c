package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/spendo-dev/spendo/internal/model"
)

const (
	transactionsCollection = "transactions"
	insightsCollection     = "insights"
)

// FirestoreStore implements Store on Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an existing Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// insightDoc is the persisted shape of an insight. The detection payload is
// intentionally dropped: only the user-facing fields survive storage.
type insightDoc struct {
	ID        string    `firestore:"id"`
	Type      string    `firestore:"type"`
	Severity  string    `firestore:"severity"`
	Merchant  string    `firestore:"merchant,omitempty"`
	Message   string    `firestore:"message"`
	Detail    string    `firestore:"detail,omitempty"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func (s *FirestoreStore) CreateTransactions(ctx context.Context, txns []model.Transaction) error {
	bw := s.client.BulkWriter(ctx)
	for _, tx := range txns {
		if tx.ID == "" {
			tx.ID = uuid.New().String()
		}
		doc := s.client.Collection(transactionsCollection).Doc(tx.ID)
		if _, err := bw.Set(doc, tx); err != nil {
			return fmt.Errorf("queueing transaction %s: %w", tx.ID, err)
		}
	}
	bw.End()
	return nil
}

func (s *FirestoreStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	query := s.client.Collection(transactionsCollection).
		OrderBy("date", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var txns []model.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing transactions: %w", err)
		}
		var tx model.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return nil, fmt.Errorf("decoding transaction %s: %w", doc.Ref.ID, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

func (s *FirestoreStore) CreateInsights(ctx context.Context, insights []model.Insight) error {
	now := time.Now()
	bw := s.client.BulkWriter(ctx)
	for _, ins := range insights {
		if ins.ID == "" {
			ins.ID = uuid.New().String()
		}
		createdAt := ins.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		doc := s.client.Collection(insightsCollection).Doc(ins.ID)
		rec := insightDoc{
			ID:        ins.ID,
			Type:      string(ins.Type),
			Severity:  string(ins.Severity),
			Merchant:  ins.Merchant,
			Message:   ins.Message,
			Detail:    ins.Detail,
			CreatedAt: createdAt,
		}
		if _, err := bw.Set(doc, rec); err != nil {
			return fmt.Errorf("queueing insight %s: %w", ins.ID, err)
		}
	}
	bw.End()
	return nil
}

func (s *FirestoreStore) ListInsights(ctx context.Context, limit int) ([]model.Insight, error) {
	if limit <= 0 {
		limit = 100
	}
	query := s.client.Collection(insightsCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var insights []model.Insight
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing insights: %w", err)
		}
		var rec insightDoc
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("decoding insight %s: %w", doc.Ref.ID, err)
		}
		insights = append(insights, model.Insight{
			ID:        rec.ID,
			Type:      model.InsightType(rec.Type),
			Severity:  model.Severity(rec.Severity),
			Merchant:  rec.Merchant,
			Message:   rec.Message,
			Detail:    rec.Detail,
			CreatedAt: rec.CreatedAt,
		})
	}
	return insights, nil
}
