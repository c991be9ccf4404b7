package portfolio

import (
	"regexp"
	"strings"
)

// SecurityClass is the resolved kind of an instrument. Both ingestion paths
// classify through the same predicate so that a derivative in the valuation
// feed resolves to the identical identifier used in the blotter.
type SecurityClass int

const (
	// Equity is any plain listed instrument identified by its ticker.
	Equity SecurityClass = iota
	// Derivative is an option contract identified by its description, so
	// that each distinct contract becomes its own entity instead of
	// colliding with its underlying's ticker.
	Derivative
)

func (c SecurityClass) String() string {
	if c == Derivative {
		return "derivative"
	}
	return "equity"
}

// occSymbology matches the strict OCC options format: root symbol, 6-digit
// expiry, C/P flag, 8-digit strike. e.g. "AAPL  240119C00185000".
var occSymbology = regexp.MustCompile(`^[A-Z.]{1,6}\s*\d{6}[CP]\d{8}$`)

// optionKeyword matches a call/put/option keyword as a whole word.
var optionKeyword = regexp.MustCompile(`(?i)\b(?:call|put|option)s?\b`)

// strikeRight matches a number immediately followed by a C or P right
// marker, e.g. "31.00C" or "185P".
var strikeRight = regexp.MustCompile(`\b\d+(?:\.\d+)?[CP]\b`)

// expiryMarker matches an explicit expiration marker, either spelled out or
// as a compact date like "18MAR22".
var expiryMarker = regexp.MustCompile(`(?i)\bexp(?:iry|ires|iring|iration)?\b|\b\d{1,2}[A-Z]{3}\d{2,4}\b`)

// Classify reports whether an instrument is an equity or a derivative.
//
// This is a heuristic classifier over dirty identifiers, not an exact one:
// any single signal is sufficient, and occasional false positives or
// negatives are absorbed by the epsilon-tolerant downstream accounting.
func Classify(rawTicker, description string) SecurityClass {
	ticker := strings.ToUpper(strings.TrimSpace(rawTicker))
	if occSymbology.MatchString(ticker) {
		return Derivative
	}
	desc := strings.TrimSpace(description)
	if optionKeyword.MatchString(desc) || strikeRight.MatchString(desc) || expiryMarker.MatchString(desc) {
		return Derivative
	}
	return Equity
}

// ordinaryMarker matches the ordinary-share wording used by dual listings.
var ordinaryMarker = regexp.MustCompile(`(?i)\bord(?:inary)?\b`)

// isAlternateClass reports whether a row describes the secondary listing of
// a dual-listed instrument: an ordinary-share marker without an ADR marker,
// or a EUR-denominated row.
func isAlternateClass(description, currency string) bool {
	if ordinaryMarker.MatchString(description) && !strings.Contains(strings.ToUpper(description), "ADR") {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(currency), "EUR")
}

// CanonicalTicker resolves the identifier a security is known by throughout
// the pipeline. Derivatives are keyed by their trimmed description; raw
// equity tickers are stripped of any pipe-delimiter artifact and trimmed.
func CanonicalTicker(rawTicker, description string) string {
	if Classify(rawTicker, description) == Derivative {
		return strings.TrimSpace(description)
	}
	ticker := rawTicker
	if i := strings.IndexByte(ticker, '|'); i >= 0 {
		ticker = ticker[:i]
	}
	return strings.TrimSpace(ticker)
}
