package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/ashvinbashyam3/trade-visualization-agr"
)

// PortfolioHistory renders the date-ordered portfolio snapshots.
func PortfolioHistory(snapshots []portfolio.PortfolioState, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio history\n\n")
	fmt.Fprintln(&b, "| Date | AUM | Cash | Holdings |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, s := range snapshots {
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n",
			s.Date,
			formatMoney(s.AUM, currency),
			formatMoney(s.Cash, currency),
			len(s.Holdings),
		)
	}
	return b.String()
}
