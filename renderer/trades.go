package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/ashvinbashyam3/trade-visualization-agr"
)

// Trades renders the normalized trade list as a markdown table.
func Trades(trades []*portfolio.Trade) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Trades\n\n")
	fmt.Fprintln(&b, "| Date | Ticker | Type | Quantity | Price | Net | Fees | Commissions | ID |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|:---|")
	for _, tr := range trades {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tr.Date,
			tr.Ticker,
			tr.Type,
			formatQuantity(tr.Quantity),
			formatMoney(tr.Price, tr.Currency),
			signedMoney(tr.NetCash, tr.Currency),
			formatMoney(tr.Fees, tr.Currency),
			formatMoney(tr.Commissions, tr.Currency),
			tr.ID,
		)
	}
	return b.String()
}
