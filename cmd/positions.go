package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ashvinbashyam3/trade-visualization-agr/renderer"
	"github.com/google/subcommands"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	all bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display finalized positions with HIFO P&L" }
func (*positionsCmd) Usage() string {
	return `tva positions [-all]

  Displays one row per security: current shares, average cost, realized and
  unrealized P&L, and size-of-AUM metrics. Positions that averaged under 1%
  of AUM and are no longer held are hidden unless -all is given.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "include small positions hidden by default")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := LoadResult()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Positions(res.Positions, reportingCurrency(), c.all))
	return subcommands.ExitSuccess
}
