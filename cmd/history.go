package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ashvinbashyam3/trade-visualization-agr/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	ticker string
}

func (*historyCmd) Name() string { return "history" }
func (*historyCmd) Synopsis() string {
	return "display the daily portfolio series, or one ticker's series"
}
func (*historyCmd) Usage() string {
	return `tva history [-t <ticker>]

  Without -t, displays the date-ordered portfolio snapshots (AUM and cash).
  With -t, displays the ticker's daily history bounded to its visible date
  window: price, shares, cost basis, and P&L.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Canonical ticker to display.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := LoadResult()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.ticker == "" {
		printMarkdown(renderer.PortfolioHistory(res.Snapshots, reportingCurrency()))
		return subcommands.ExitSuccess
	}
	for _, p := range res.Positions {
		if p.Ticker == c.ticker {
			printMarkdown(renderer.PositionHistory(p, reportingCurrency()))
			return subcommands.ExitSuccess
		}
	}
	fmt.Fprintf(os.Stderr, "Error: no position for ticker %q\n", c.ticker)
	return subcommands.ExitFailure
}
