package portfolio

import "fmt"

// Result is the complete in-memory output of one reconciliation run,
// consumed entirely by presentation logic.
type Result struct {
	Positions []Position
	Snapshots []PortfolioState // one per simulated date, ascending
	Trades    []*Trade         // the full normalized trade list
}

// Run executes the whole pipeline over two already-decoded tables:
// normalization, alternate-class consolidation, valuation ingestion,
// timeline construction, simulation, and finalization.
//
// The engine is best-effort over dirty data: unparsable rows are absorbed,
// not raised. Only a structurally empty transaction source is a hard
// failure.
func Run(blotter, valuations Table, cfg Config) (*Result, error) {
	if len(blotter.Rows) == 0 {
		return nil, fmt.Errorf("transaction table %q is empty", blotter.Name)
	}
	trades := NormalizeBlotter(blotter, cfg)
	if len(trades) == 0 {
		return nil, fmt.Errorf("transaction table %q yields no usable transactions", blotter.Name)
	}
	trades = ConsolidateAlternateClasses(trades, cfg)

	history := IngestValuations(valuations, cfg)
	timeline := Timeline(trades, history)

	sim := simulate(trades, history, timeline)
	return &Result{
		Positions: sim.finalize(trades),
		Snapshots: sim.snapshots,
		Trades:    trades,
	}, nil
}
