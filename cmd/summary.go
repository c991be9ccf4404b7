package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ashvinbashyam3/trade-visualization-agr/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display an at-a-glance overview of the portfolio" }
func (*summaryCmd) Usage() string {
	return `tva summary

  Displays the latest AUM and cash, aggregate realized/unrealized P&L, and
  position and trade counts.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := LoadResult()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Summary(res, reportingCurrency()))
	return subcommands.ExitSuccess
}
