// Package normalizer maps raw bank statement descriptions to canonical
// merchant names and categories.
package normalizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Merchant is a normalized merchant name plus its category.
type Merchant struct {
	Clean    string
	Category string
}

// rule matches a raw description against a known merchant. When exclude is
// set, a description matching it is passed over even if pattern matches;
// this stands in for negative lookahead, which RE2 does not support.
type rule struct {
	pattern  *regexp.Regexp
	exclude  *regexp.Regexp
	name     string
	category string
}

// merchantRules is evaluated in order and the first match wins. Order is a
// contract: specific patterns must precede general ones ("Uber Eats" before
// "Uber", "Amazon Prime" before "Amazon").
var merchantRules = []rule{
	// Streaming
	{pattern: regexp.MustCompile(`(?i)netflix`), name: "Netflix", category: "Entertainment"},
	{pattern: regexp.MustCompile(`(?i)spotify`), name: "Spotify", category: "Entertainment"},
	{pattern: regexp.MustCompile(`(?i)hulu`), name: "Hulu", category: "Entertainment"},
	{pattern: regexp.MustCompile(`(?i)disney\+?|disneyplus`), name: "Disney+", category: "Entertainment"},
	{pattern: regexp.MustCompile(`(?i)hbo|max`), name: "HBO Max", category: "Entertainment"},
	{pattern: regexp.MustCompile(`(?i)prime video|amazon prime`), name: "Amazon Prime", category: "Entertainment"},

	// Food
	{pattern: regexp.MustCompile(`(?i)starbucks`), name: "Starbucks", category: "Dining"},
	{pattern: regexp.MustCompile(`(?i)chipotle`), name: "Chipotle", category: "Dining"},
	{pattern: regexp.MustCompile(`(?i)mcdonalds|mcdonald's`), name: "McDonalds", category: "Dining"},
	{pattern: regexp.MustCompile(`(?i)subway`), name: "Subway", category: "Dining"},
	{pattern: regexp.MustCompile(`(?i)panera`), name: "Panera", category: "Dining"},
	{pattern: regexp.MustCompile(`(?i)cheesecake factory`), name: "Cheesecake Factory", category: "Dining"},
	{pattern: regexp.MustCompile(`(?i)outback`), name: "Outback Steakhouse", category: "Dining"},

	// Delivery
	{pattern: regexp.MustCompile(`(?i)uber\s*eats`), name: "Uber Eats", category: "Food Delivery"},
	{pattern: regexp.MustCompile(`(?i)doordash`), name: "DoorDash", category: "Food Delivery"},
	{pattern: regexp.MustCompile(`(?i)grubhub`), name: "GrubHub", category: "Food Delivery"},
	{pattern: regexp.MustCompile(`(?i)postmates`), name: "Postmates", category: "Food Delivery"},

	// Grocery
	{pattern: regexp.MustCompile(`(?i)safeway`), name: "Safeway", category: "Groceries"},
	{pattern: regexp.MustCompile(`(?i)whole foods`), name: "Whole Foods", category: "Groceries"},
	{pattern: regexp.MustCompile(`(?i)trader joe`), name: "Trader Joes", category: "Groceries"},
	{pattern: regexp.MustCompile(`(?i)kroger`), name: "Kroger", category: "Groceries"},

	// Retail
	{pattern: regexp.MustCompile(`(?i)target`), name: "Target", category: "Shopping"},
	{pattern: regexp.MustCompile(`(?i)walmart`), name: "Walmart", category: "Shopping"},
	{pattern: regexp.MustCompile(`(?i)amazon`), exclude: regexp.MustCompile(`(?i)prime`), name: "Amazon", category: "Shopping"},
	{pattern: regexp.MustCompile(`(?i)costco`), name: "Costco", category: "Shopping"},

	// Transport. The exclude keeps delivery charges like "UBER* EATS" from
	// being classified as rides when the specific rule above misses them.
	{pattern: regexp.MustCompile(`(?i)uber`), exclude: regexp.MustCompile(`(?i)eats`), name: "Uber", category: "Transportation"},
	{pattern: regexp.MustCompile(`(?i)lyft`), name: "Lyft", category: "Transportation"},

	// Income
	{pattern: regexp.MustCompile(`(?i)direct deposit|employer|payroll`), name: "Paycheck", category: "Income"},
}

var (
	storeNumbers = regexp.MustCompile(`#\d+`)
	longNumbers  = regexp.MustCompile(`\d{4,}`)
	specialChars = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

var titleCaser = cases.Title(language.English)

// Normalize maps a raw description to a canonical merchant. It is pure and
// total: unknown merchants fall through to a cleanup pass with category
// "Other", and blank input yields "Unknown Merchant".
func Normalize(raw string) Merchant {
	if strings.TrimSpace(raw) == "" {
		return Merchant{Clean: "Unknown Merchant", Category: "Other"}
	}

	for _, r := range merchantRules {
		if !r.pattern.MatchString(raw) {
			continue
		}
		if r.exclude != nil && r.exclude.MatchString(raw) {
			continue
		}
		return Merchant{Clean: r.name, Category: r.category}
	}

	cleaned := storeNumbers.ReplaceAllString(raw, "")
	cleaned = longNumbers.ReplaceAllString(cleaned, "")
	cleaned = specialChars.ReplaceAllString(cleaned, " ")
	cleaned = whitespace.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return Merchant{Clean: "Unknown Merchant", Category: "Other"}
	}

	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = titleCaser.String(strings.ToLower(w))
	}

	return Merchant{Clean: strings.Join(words, " "), Category: "Other"}
}
