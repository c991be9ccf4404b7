package portfolio

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		ticker      string
		description string
		want        SecurityClass
	}{
		{"plain equity", "AAPL", "APPLE INC", Equity},
		{"occ symbology", "AAPL  240119C00185000", "", Derivative},
		{"occ symbology no space", "SPY240119P00450000", "", Derivative},
		{"call keyword", "XYZ", "XYZ CORP CALL JAN 2024", Derivative},
		{"put keyword", "XYZ", "Put on XYZ", Derivative},
		{"option keyword", "XYZ", "XYZ equity options", Derivative},
		{"strike right marker", "FLW", "FLW 31.00P 18MAR22", Derivative},
		{"expiration marker", "XYZ", "XYZ EXP 03/22", Derivative},
		{"compact expiry date", "FLW", "FLW 18MAR22", Derivative},
		{"callaway is not a call", "ELY", "CALLAWAY GOLF", Equity},
		{"corporation is not a corp strike", "ACME", "ACME CORPORATION", Equity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.ticker, tc.description); got != tc.want {
				t.Errorf("Classify(%q, %q) = %s, want %s", tc.ticker, tc.description, got, tc.want)
			}
		})
	}
}

func TestCanonicalTicker(t *testing.T) {
	// A derivative is keyed by its description so each contract is its own
	// entity instead of colliding with the underlying's ticker.
	if got := CanonicalTicker("FLW", " FLW 31.00P 18MAR22 "); got != "FLW 31.00P 18MAR22" {
		t.Errorf("derivative CanonicalTicker = %q", got)
	}
	if got := CanonicalTicker(" AAPL | US0378331005 ", "APPLE INC"); got != "AAPL" {
		t.Errorf("pipe artifact CanonicalTicker = %q", got)
	}
	if got := CanonicalTicker("msft ", "MICROSOFT"); got != "msft" {
		t.Errorf("equity CanonicalTicker = %q", got)
	}
}

func TestIsAlternateClass(t *testing.T) {
	tests := []struct {
		description string
		currency    string
		want        bool
	}{
		{"ARGENX SE ORD SHS", "USD", true},
		{"ARGENX SE ORDINARY SHARES", "USD", true},
		{"ARGENX SE ADR", "USD", false},
		{"ARGENX SE ADR REP ORD SHS", "USD", false}, // ADR marker wins
		{"ARGENX SE", "EUR", true},
		{"ARGENX SE", "eur", true},
		{"ARGENX SE", "USD", false},
	}
	for _, tc := range tests {
		if got := isAlternateClass(tc.description, tc.currency); got != tc.want {
			t.Errorf("isAlternateClass(%q, %q) = %v, want %v", tc.description, tc.currency, got, tc.want)
		}
	}
}
