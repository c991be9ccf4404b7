// Package renderer renders the engine's finalized output to markdown
// strings for terminal display.
package renderer

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// formatMoney formats a float amount with the currency's own formatter
// (symbol, fraction digits, separators). Unknown currency codes fall back
// to a plain two-decimal rendering.
func formatMoney(v float64, currency string) string {
	c := money.GetCurrency(currency)
	if c == nil {
		return fmt.Sprintf("%.2f", v)
	}
	minor := int64(math.Round(v * math.Pow10(c.Fraction)))
	return c.Formatter().Format(minor)
}

// signedMoney is formatMoney with an explicit sign, rendering zero as "-".
func signedMoney(v float64, currency string) string {
	switch {
	case v == 0:
		return "-"
	case v > 0:
		return "+" + formatMoney(v, currency)
	default:
		return formatMoney(v, currency)
	}
}

// formatQuantity drops insignificant trailing zeros from a share count.
func formatQuantity(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.4f", v)
}
