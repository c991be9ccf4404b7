package portfolio

import (
	"fmt"
	"math"
	"sort"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

// Percent is a size expressed as a percentage of AUM.
type Percent float64

// Equal compares two percentages with display precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// significantSize is the average size-percent at or above which a position
// is material even when no longer held.
const significantSize = 1.0

// Position is the finalized per-ticker output of a run.
type Position struct {
	Ticker     string
	Shares     float64
	AvgCost    float64
	Realized   float64
	Unrealized float64
	Total      float64

	MaxSize Percent // maximum daily size as percent of AUM
	AvgSize Percent // time-weighted average size over held days

	// Small marks a position a presentation layer hides by default: it
	// averaged under 1% of AUM and is no longer held.
	Small bool

	Trades  []*Trade
	History []PositionHistoryPoint
}

// finalize derives the published Position list from the simulator state,
// sorted by ticker for stable output.
func (s *simulator) finalize(trades []*Trade) []Position {
	byTicker := make(map[string][]*Trade)
	firstTrade := make(map[string]date.Date)
	lastTrade := make(map[string]date.Date)
	for _, tr := range trades {
		byTicker[tr.Ticker] = append(byTicker[tr.Ticker], tr)
		firstTrade[tr.Ticker] = date.Min(firstTrade[tr.Ticker], tr.Date)
		lastTrade[tr.Ticker] = date.Max(lastTrade[tr.Ticker], tr.Date)
	}

	tickers := make([]string, 0, len(s.positions))
	for ticker := range s.positions {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	out := make([]Position, 0, len(tickers))
	for _, ticker := range tickers {
		pos := s.positions[ticker]
		h := s.holdings[ticker]
		unrealized := pos.shares*h.Price - pos.lots.totalCost()

		var avgSize float64
		if pos.daysHeld > 0 {
			avgSize = pos.sizeSum / float64(pos.daysHeld)
		}
		held := math.Abs(pos.shares) > heldEpsilon

		from := date.Min(firstTrade[ticker], s.valuations.FirstSeen[ticker])
		to := date.Max(lastTrade[ticker], s.valuations.LastSeen[ticker])

		out = append(out, Position{
			Ticker:     ticker,
			Shares:     pos.shares,
			AvgCost:    pos.lots.averageCost(),
			Realized:   pos.realized,
			Unrealized: unrealized,
			Total:      pos.realized + unrealized,
			MaxSize:    Percent(pos.maxSize),
			AvgSize:    Percent(avgSize),
			Small:      avgSize < significantSize && !held,
			Trades:     byTicker[ticker],
			History:    clipHistory(pos.history, from, to),
		})
	}
	return out
}

// clipHistory bounds a ticker's series to its visible date window, with a
// one-point pad on each side where available. If the bounds cannot be
// located in the series, the full unclipped series is retained as a safe
// fallback.
func clipHistory(points []PositionHistoryPoint, from, to date.Date) []PositionHistoryPoint {
	if from.IsZero() || to.IsZero() {
		return points
	}
	start, end := -1, -1
	for i, pt := range points {
		if start < 0 && !pt.Date.Before(from) {
			start = i
		}
		if !pt.Date.After(to) {
			end = i
		}
	}
	if start < 0 || end < 0 || start > end {
		return points
	}
	if start > 0 {
		start--
	}
	if end < len(points)-1 {
		end++
	}
	return points[start : end+1]
}
