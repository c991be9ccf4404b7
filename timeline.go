package portfolio

import (
	"sort"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

// Timeline unions all distinct trade dates and valuation dates into one
// deduplicated sequence, sorted ascending. This is the spine the simulator
// walks: a date present in only one source still gets a full simulation
// step.
func Timeline(trades []*Trade, valuations *ValuationHistory) []date.Date {
	set := make(map[date.Date]struct{})
	for _, tr := range trades {
		set[tr.Date] = struct{}{}
	}
	if valuations != nil {
		for _, on := range valuations.Dates() {
			set[on] = struct{}{}
		}
	}
	out := make([]date.Date, 0, len(set))
	for on := range set {
		out = append(out, on)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
