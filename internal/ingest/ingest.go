// Package ingest converts arbitrary bank CSV exports into canonical
// transactions. It performs no I/O; reading the file is the caller's job.
package ingest

import (
	"encoding/csv"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/spendo-dev/spendo/internal/model"
	"github.com/spendo-dev/spendo/internal/normalizer"
)

// columnMap holds the detected index of each column role. -1 means absent.
type columnMap struct {
	date    int
	desc    int
	debit   int
	credit  int
	amount  int
	balance int
}

// Ranked header patterns per role. The first pattern that matches any header
// wins, so more specific names are listed after the generic one only when the
// generic one subsumes them anyway.
var (
	datePatterns = []string{"date", "trans date", "transaction date", "posted date"}
	descPatterns = []string{"description", "merchant", "memo", "payee", "details"}
)

// Ingestor parses CSV text into transactions.
type Ingestor struct {
	log zerolog.Logger
	now func() time.Time
}

// New creates an Ingestor.
func New(log zerolog.Logger) *Ingestor {
	return &Ingestor{log: log, now: time.Now}
}

// Parse converts raw CSV text into transactions sorted by date descending.
// It returns an *ImportError on fatal failures; row-level problems are
// tolerated (unparseable amounts coerce to 0, unparseable dates become the
// zero time and are logged).
func (g *Ingestor) Parse(csvText string) ([]model.Transaction, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ImportError{Code: ErrBadFile, Message: "could not read file as CSV", Cause: err}
	}
	if len(records) == 0 {
		return nil, &ImportError{Code: ErrBadFile, Message: "file is empty"}
	}

	cols := detectColumns(records[0])
	if cols.date < 0 || cols.desc < 0 {
		return nil, &ImportError{Code: ErrUnsupportedFormat, Message: "could not detect date and description columns"}
	}

	batch := g.now().UnixMilli()
	var txns []model.Transaction
	for rowNum, rec := range records[1:] {
		rawDesc := field(rec, cols.desc)
		lower := strings.ToLower(rawDesc)
		if lower == "" || strings.Contains(lower, "opening balance") || strings.Contains(lower, "balance forward") {
			continue
		}

		var amount float64
		if cols.amount >= 0 {
			amount = parseAmount(field(rec, cols.amount))
		} else if cols.debit >= 0 && cols.credit >= 0 {
			debit := parseAmount(field(rec, cols.debit))
			credit := parseAmount(field(rec, cols.credit))
			amount = credit - debit
		}

		date, ok := parseDate(field(rec, cols.date))
		if !ok {
			g.log.Warn().Int("row", rowNum+2).Str("date", field(rec, cols.date)).
				Msg("unparseable date, keeping row with zero date")
		}

		m := normalizer.Normalize(rawDesc)
		txns = append(txns, model.Transaction{
			ID:            "txn-" + strconv.FormatInt(batch, 10) + "-" + strconv.Itoa(len(txns)),
			Date:          date,
			MerchantRaw:   rawDesc,
			MerchantClean: m.Clean,
			Amount:        amount,
			Category:      m.Category,
			Source:        model.SourceUpload,
		})
	}

	if len(txns) == 0 {
		return nil, &ImportError{Code: ErrEmptyResult, Message: "no transactions found in file"}
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	return txns, nil
}

// detectColumns scans headers case-insensitively for substring matches
// against the ranked pattern lists. First match per role wins.
func detectColumns(headers []string) columnMap {
	cols := columnMap{date: -1, desc: -1, debit: -1, credit: -1, amount: -1, balance: -1}

	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	find := func(patterns ...string) int {
		for _, p := range patterns {
			for i, h := range lower {
				if strings.Contains(h, p) {
					return i
				}
			}
		}
		return -1
	}

	cols.date = find(datePatterns...)
	cols.desc = find(descPatterns...)
	cols.debit = find("debit", "withdrawal")
	cols.credit = find("credit", "deposit")
	cols.amount = find("amount")
	cols.balance = find("balance")
	return cols
}

func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

var (
	isoPrefix   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	slashTriple = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`)
)

// fallbackLayouts are tried after the common bank formats.
var fallbackLayouts = []string{
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
	"01-02-2006",
}

// parseDate accepts ISO dates, MM/DD/YYYY, and DD/MM/YYYY when the first
// component exceeds 12. Unparseable input yields the zero time with ok=false
// rather than an error; the row is kept.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if isoPrefix.MatchString(s) {
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t, true
		}
	}

	if slashTriple.MatchString(s) {
		// MM/DD/YYYY first; when the first component is not a valid month
		// the parse fails and the DD/MM/YYYY reading takes over.
		if t, err := time.Parse("1/2/2006", s); err == nil {
			return t, true
		}
		if t, err := time.Parse("2/1/2006", s); err == nil {
			return t, true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var amountCleaner = strings.NewReplacer("$", "", ",", "")

// parseAmount handles "$1,234.56" and accounting-style "(123.45)" negatives.
// Non-numeric or empty input yields 0.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	cleaned := amountCleaner.Replace(s)
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
