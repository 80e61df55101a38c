// Package demo provides a canned transaction set that exercises every
// detector: a Starbucks spike, a Netflix price hike, a Safeway grocery
// spike, and an Uber Eats frequency creep, plus enough quiet baseline
// merchants to keep the feed realistic.
package demo

import (
	"time"

	"github.com/spendo-dev/spendo/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func txn(id string, date time.Time, raw, clean string, amount float64, category string) model.Transaction {
	return model.Transaction{
		ID:            id,
		Date:          date,
		MerchantRaw:   raw,
		MerchantClean: clean,
		Amount:        amount,
		Category:      category,
		Source:        model.SourceDemo,
	}
}

// Transactions returns the demo data set. The slice is freshly allocated so
// callers may modify it.
func Transactions() []model.Transaction {
	return []model.Transaction{
		// Starbucks baseline, then one anomalous charge in January.
		txn("demo-1", day(2024, 12, 5), "Starbucks #4821", "Starbucks", -12.50, "Food & Drink"),
		txn("demo-2", day(2024, 12, 10), "Starbucks #4821", "Starbucks", -11.75, "Food & Drink"),
		txn("demo-3", day(2024, 12, 15), "Starbucks #4821", "Starbucks", -13.20, "Food & Drink"),
		txn("demo-4", day(2024, 12, 20), "Starbucks #4821", "Starbucks", -10.90, "Food & Drink"),
		txn("demo-5", day(2025, 1, 5), "Starbucks #4821", "Starbucks", -85.00, "Food & Drink"),
		txn("demo-6", day(2025, 1, 10), "Starbucks #4821", "Starbucks", -12.50, "Food & Drink"),

		// Netflix stealth hike.
		txn("demo-7", day(2024, 11, 15), "Netflix.com", "Netflix", -15.99, "Subscriptions"),
		txn("demo-8", day(2024, 12, 15), "Netflix.com", "Netflix", -15.99, "Subscriptions"),
		txn("demo-9", day(2025, 1, 15), "Netflix.com", "Netflix", -22.99, "Subscriptions"),

		// Grocery baseline plus one oversized run.
		txn("demo-10", day(2024, 12, 8), "Safeway #1234", "Safeway", -65.23, "Groceries"),
		txn("demo-11", day(2024, 12, 22), "Safeway #1234", "Safeway", -72.10, "Groceries"),
		txn("demo-12", day(2025, 1, 12), "Safeway #1234", "Safeway", -68.50, "Groceries"),
		txn("demo-13", day(2025, 1, 20), "Safeway #1234", "Safeway", -210.45, "Groceries"),

		// Uber Eats frequency creep, 2 visits in December to 8 in January.
		txn("demo-14", day(2024, 12, 5), "Uber Eats", "Uber Eats", -25.00, "Food Delivery"),
		txn("demo-15", day(2024, 12, 18), "Uber Eats", "Uber Eats", -30.00, "Food Delivery"),
		txn("demo-16", day(2025, 1, 3), "Uber Eats", "Uber Eats", -28.00, "Food Delivery"),
		txn("demo-17", day(2025, 1, 7), "Uber Eats", "Uber Eats", -32.00, "Food Delivery"),
		txn("demo-18", day(2025, 1, 12), "Uber Eats", "Uber Eats", -27.50, "Food Delivery"),
		txn("demo-19", day(2025, 1, 16), "Uber Eats", "Uber Eats", -35.00, "Food Delivery"),
		txn("demo-20", day(2025, 1, 20), "Uber Eats", "Uber Eats", -29.00, "Food Delivery"),
		txn("demo-21", day(2025, 1, 22), "Uber Eats", "Uber Eats", -31.00, "Food Delivery"),
		txn("demo-22", day(2025, 1, 24), "Uber Eats", "Uber Eats", -26.00, "Food Delivery"),
		txn("demo-23", day(2025, 1, 27), "Uber Eats", "Uber Eats", -33.00, "Food Delivery"),

		// First appearance of a new merchant.
		txn("demo-24", day(2025, 1, 18), "Equinox", "Equinox", -195.00, "Fitness"),

		// Dining-out baseline.
		txn("demo-25", day(2024, 12, 10), "Chipotle #5421", "Chipotle", -15.50, "Dining Out"),
		txn("demo-26", day(2024, 12, 20), "Chipotle #5421", "Chipotle", -18.00, "Dining Out"),
		txn("demo-27", day(2024, 12, 25), "The Cheesecake Factory", "Cheesecake Factory", -85.00, "Dining Out"),
	}
}
