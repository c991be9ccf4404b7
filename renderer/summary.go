package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/ashvinbashyam3/trade-visualization-agr"
)

// Summary renders an at-a-glance overview of a run: latest AUM and cash,
// aggregate P&L, and counts.
func Summary(res *portfolio.Result, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Summary\n\n")

	if n := len(res.Snapshots); n > 0 {
		last := res.Snapshots[n-1]
		fmt.Fprintf(&b, "- As of: **%s** (%d simulated days)\n", last.Date, n)
		fmt.Fprintf(&b, "- AUM: **%s**\n", formatMoney(last.AUM, currency))
		fmt.Fprintf(&b, "- Cash: %s\n", formatMoney(last.Cash, currency))
	}

	var realized, unrealized float64
	material := 0
	for _, p := range res.Positions {
		realized += p.Realized
		unrealized += p.Unrealized
		if !p.Small {
			material++
		}
	}
	fmt.Fprintf(&b, "- Realized P&L: %s\n", signedMoney(realized, currency))
	fmt.Fprintf(&b, "- Unrealized P&L: %s\n", signedMoney(unrealized, currency))
	fmt.Fprintf(&b, "- Total P&L: %s\n", signedMoney(realized+unrealized, currency))
	fmt.Fprintf(&b, "- Positions: %d (%d material), trades: %d\n",
		len(res.Positions), material, len(res.Trades))
	return b.String()
}
