// Package cmd implements the CLI application to reconcile and inspect a
// trading portfolio workbook.
package cmd

import (
	"flag"

	portfolio "github.com/ashvinbashyam3/trade-visualization-agr"
	"github.com/ashvinbashyam3/trade-visualization-agr/xlsx"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(subcommands.HelpCommand(), "")
	c.Register(subcommands.FlagsCommand(), "")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&positionsCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&tradesCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var workbookFile = flag.String("workbook", "portfolio.xlsx", "Path to the source workbook (.xlsx) with transaction and valuation sheets")

// LoadResult decodes the workbook and runs the full reconciliation
// pipeline with the default configuration.
func LoadResult() (*portfolio.Result, error) {
	blotter, valuations, err := xlsx.Decode(*workbookFile)
	if err != nil {
		return nil, err
	}
	return portfolio.Run(blotter, valuations, portfolio.DefaultConfig())
}

// reportingCurrency is the currency reports are labeled with.
func reportingCurrency() string { return portfolio.DefaultConfig().ReportingCurrency }
