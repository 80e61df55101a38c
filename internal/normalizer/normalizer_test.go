package normalizer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantClean    string
		wantCategory string
	}{
		{
			name:         "Netflix with domain suffix",
			raw:          "Netflix.com",
			wantClean:    "Netflix",
			wantCategory: "Entertainment",
		},
		{
			name:         "Starbucks with store number",
			raw:          "Starbucks #4821",
			wantClean:    "Starbucks",
			wantCategory: "Dining",
		},
		{
			name:         "Uber Eats before bare Uber",
			raw:          "Uber Eats",
			wantClean:    "Uber Eats",
			wantCategory: "Food Delivery",
		},
		{
			name:         "Uber Eats with card-processor noise",
			raw:          "UBER* EATS PENDING",
			wantClean:    "Uber Eats",
			wantCategory: "Food Delivery",
		},
		{
			name:         "bare Uber trip",
			raw:          "UBER *TRIP 8861",
			wantClean:    "Uber",
			wantCategory: "Transportation",
		},
		{
			name:         "Amazon Prime before bare Amazon",
			raw:          "AMAZON PRIME*2V4 MEMBERSHIP",
			wantClean:    "Amazon Prime",
			wantCategory: "Entertainment",
		},
		{
			name:         "bare Amazon order",
			raw:          "AMZN AMAZON.COM*889124",
			wantClean:    "Amazon",
			wantCategory: "Shopping",
		},
		{
			name:         "payroll maps to income",
			raw:          "DIRECT DEPOSIT ACME CORP",
			wantClean:    "Paycheck",
			wantCategory: "Income",
		},
		{
			name:         "unknown merchant cleaned and title-cased",
			raw:          "SQ *BLUE BOTTLE #1234 55512",
			wantClean:    "Sq Blue Bottle",
			wantCategory: "Other",
		},
		{
			name:         "empty input",
			raw:          "",
			wantClean:    "Unknown Merchant",
			wantCategory: "Other",
		},
		{
			name:         "whitespace only",
			raw:          "   ",
			wantClean:    "Unknown Merchant",
			wantCategory: "Other",
		},
		{
			name:         "only digits and punctuation",
			raw:          "#9999 **** 12345678",
			wantClean:    "Unknown Merchant",
			wantCategory: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if got.Clean != tt.wantClean {
				t.Errorf("Normalize(%q).Clean = %q, want %q", tt.raw, got.Clean, tt.wantClean)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Normalize(%q).Category = %q, want %q", tt.raw, got.Category, tt.wantCategory)
			}
		})
	}
}

func TestNormalizeIsStable(t *testing.T) {
	inputs := []string{"Netflix.com", "Starbucks #4821", "Uber Eats", "Some Corner Shop 77"}
	for _, raw := range inputs {
		first := Normalize(raw)
		for i := 0; i < 3; i++ {
			if got := Normalize(raw); got != first {
				t.Fatalf("Normalize(%q) unstable: %v then %v", raw, first, got)
			}
		}
		if first.Category == "" {
			t.Errorf("Normalize(%q) returned empty category", raw)
		}
	}
}
