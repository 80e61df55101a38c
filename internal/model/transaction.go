package model

import "time"

// Source identifies where a transaction came from.
type Source string

const (
	SourceDemo   Source = "demo-seed"
	SourceUpload Source = "uploaded"
)

// Transaction is a canonical bank transaction. Immutable once created:
// the ingestor (or demo fixtures) builds it, nothing mutates it afterwards.
// Negative amounts are expenses, positive amounts are income.
type Transaction struct {
	ID            string    `json:"id" firestore:"id"`
	Date          time.Time `json:"date" firestore:"date"`
	MerchantRaw   string    `json:"merchantRaw" firestore:"merchantRaw"`
	MerchantClean string    `json:"merchantClean" firestore:"merchantClean"`
	Amount        float64   `json:"amount" firestore:"amount"`
	Category      string    `json:"category" firestore:"category"`
	Source        Source    `json:"source" firestore:"source"`
}

// IsExpense reports whether the transaction is an outflow.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}
