package portfolio

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one decoded source row: column header → raw cell text.
type Row map[string]string

// Table is an ordered, loosely typed view of one source sheet. The engine
// never reads files itself; a decoder (see the xlsx package) hands it
// already-decoded tables.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Column returns the header of the first column matching any of the
// candidates, tried in order. Matching is case-insensitive by substring, so
// "Trade Date" is found by the candidate "date". It returns "" and false
// when no candidate matches; reading a row through a "" column yields a
// blank value, which is how a missing optional column degrades.
func (t *Table) Column(candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		c := strings.ToLower(candidate)
		for _, header := range t.Columns {
			if strings.Contains(strings.ToLower(header), c) {
				return header, true
			}
		}
	}
	return "", false
}

// field returns the trimmed cell value under the given header, or "" when
// the column was not discovered.
func (r Row) field(column string) string {
	if column == "" {
		return ""
	}
	return strings.TrimSpace(r[column])
}

// amountCleaner drops the decoration found in currency-formatted cells.
var amountCleaner = strings.NewReplacer(
	"$", "", "€", "", "£", "",
	",", "", " ", "", " ", "",
)

// parseAmount parses a loosely formatted numeric cell: thousands
// separators, currency symbols, and parenthesis-negative notation are all
// tolerated. An unparsable value defaults to zero; dirty data must never
// stop processing.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = amountCleaner.Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	if negative {
		d = d.Neg()
	}
	return d.InexactFloat64()
}
