package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/ashvinbashyam3/trade-visualization-agr"
	"github.com/ashvinbashyam3/trade-visualization-agr/renderer"
	"github.com/google/subcommands"
)

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct {
	ticker string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "display the normalized trade list" }
func (*tradesCmd) Usage() string {
	return `tva trades [-t <ticker>]

  Displays the canonical trade list after normalization and alternate-class
  consolidation, optionally filtered to one ticker.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Canonical ticker to filter on.")
}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := LoadResult()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	trades := res.Trades
	if c.ticker != "" {
		var filtered []*portfolio.Trade
		for _, tr := range trades {
			if tr.Ticker == c.ticker {
				filtered = append(filtered, tr)
			}
		}
		trades = filtered
	}
	printMarkdown(renderer.Trades(trades))
	return subcommands.ExitSuccess
}
