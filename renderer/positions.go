package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/ashvinbashyam3/trade-visualization-agr"
)

// Positions renders the finalized position list as a markdown table.
// Small positions are hidden unless showSmall is set; a count of the
// hidden ones is appended instead.
func Positions(positions []portfolio.Position, currency string, showSmall bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Positions\n\n")
	fmt.Fprintln(&b, "| Ticker | Shares | Avg Cost | Realized | Unrealized | Total P&L | Max Size | Avg Size |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")

	hidden := 0
	for _, p := range positions {
		if p.Small && !showSmall {
			hidden++
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			p.Ticker,
			formatQuantity(p.Shares),
			formatMoney(p.AvgCost, currency),
			signedMoney(p.Realized, currency),
			signedMoney(p.Unrealized, currency),
			signedMoney(p.Total, currency),
			p.MaxSize,
			p.AvgSize,
		)
	}
	if hidden > 0 {
		fmt.Fprintf(&b, "\n%d small positions hidden (use -all to show them).\n", hidden)
	}
	return b.String()
}

// PositionHistory renders one ticker's daily series.
func PositionHistory(p portfolio.Position, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s daily history\n\n", p.Ticker)
	fmt.Fprintln(&b, "| Date | Price | Shares | Avg Cost | Realized | Unrealized | Total P&L |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, pt := range p.History {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			pt.Date,
			formatMoney(pt.Price, currency),
			formatQuantity(pt.Shares),
			formatMoney(pt.AvgCost, currency),
			signedMoney(pt.Realized, currency),
			signedMoney(pt.Unrealized, currency),
			signedMoney(pt.Total, currency),
		)
	}
	return b.String()
}
