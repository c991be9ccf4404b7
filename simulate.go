package portfolio

import (
	"maps"
	"math"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

// heldEpsilon is the share magnitude above which a position counts as held
// on a given day.
const heldEpsilon = 1e-5

// Holding is the current stake in one ticker together with its last known
// price.
type Holding struct {
	Shares float64
	Price  float64
}

// PortfolioState is the snapshot of the whole portfolio on one simulated
// date. Snapshots are immutable once appended: each takes an independent
// copy of the holdings map, so later mutation cannot retroactively alter
// history.
type PortfolioState struct {
	Date     date.Date
	Holdings map[string]Holding
	Cash     float64
	AUM      float64
}

// PositionHistoryPoint is one per-ticker daily observation, appended once
// per simulated date.
type PositionHistoryPoint struct {
	Date       date.Date
	Price      float64
	Shares     float64
	AvgCost    float64 // average cost basis of the remaining lots
	Realized   float64 // realized P&L to date
	Unrealized float64
	Total      float64 // Realized + Unrealized
}

// positionState tracks one ticker while the simulation runs. It is
// transient: the Position Finalizer derives the published Position from it.
type positionState struct {
	ticker   string
	shares   float64
	lots     lots
	realized float64
	history  []PositionHistoryPoint

	sizeSum  float64 // running sum of daily size-percent over held days
	daysHeld int
	maxSize  float64
}

// simulator is the state machine of the engine: one running portfolio
// state plus one positionState per ticker that has ever traded. It is a
// strict left-to-right fold over the timeline; there is no other entry
// point and no rollback.
type simulator struct {
	valuations *ValuationHistory

	cash      float64
	holdings  map[string]Holding
	positions map[string]*positionState
	snapshots []PortfolioState
}

// simulate walks the timeline once, mutating cash, holdings, and per-ticker
// lot books, and emits one snapshot per date and one history point per
// ticker per date.
func simulate(trades []*Trade, valuations *ValuationHistory, timeline []date.Date) *simulator {
	s := &simulator{
		valuations: valuations,
		holdings:   make(map[string]Holding),
		positions:  make(map[string]*positionState),
	}
	byDate := make(map[date.Date][]*Trade, len(timeline))
	for _, tr := range trades {
		byDate[tr.Date] = append(byDate[tr.Date], tr)
	}
	var prev date.Date
	for i, on := range timeline {
		s.step(on, byDate[on], prev, i > 0)
		prev = on
	}
	return s
}

// step advances the fold by one date.
func (s *simulator) step(on date.Date, trades []*Trade, prev date.Date, hasPrev bool) {
	// 1. Apply the trades dated this day.
	for _, tr := range trades {
		s.apply(tr, prev, hasPrev)
	}

	// 2. Valuation-history prices are authoritative when present: they
	// overwrite the last known holding price.
	for ticker, h := range s.holdings {
		if price, ok := s.valuations.Price(ticker, on); ok && price > 0 {
			h.Price = price
			s.holdings[ticker] = h
		}
	}

	// 3. Prefer the valuation feed's AUM for the date; without one, value
	// the book directly.
	aum, ok := s.valuations.AUM.Get(on)
	if !ok {
		aum = s.cash
		for _, h := range s.holdings {
			aum += h.Shares * h.Price
		}
	}

	// 4. Snapshot.
	s.snapshots = append(s.snapshots, PortfolioState{
		Date:     on,
		Holdings: maps.Clone(s.holdings),
		Cash:     s.cash,
		AUM:      aum,
	})

	// 5. Per-ticker history point and size metrics.
	for _, pos := range s.positions {
		h := s.holdings[pos.ticker]
		marketValue := pos.shares * h.Price
		unrealized := marketValue - pos.lots.totalCost()
		pos.history = append(pos.history, PositionHistoryPoint{
			Date:       on,
			Price:      h.Price,
			Shares:     pos.shares,
			AvgCost:    pos.lots.averageCost(),
			Realized:   pos.realized,
			Unrealized: unrealized,
			Total:      pos.realized + unrealized,
		})

		var size float64
		if aum > 0 {
			size = marketValue / aum * 100
		}
		if size > pos.maxSize {
			pos.maxSize = size
		}
		// Size is time-weighted over days actually held.
		if math.Abs(pos.shares) > heldEpsilon {
			pos.sizeSum += size
			pos.daysHeld++
		}
	}
}

// apply folds a single trade into the running state.
func (s *simulator) apply(tr *Trade, prev date.Date, hasPrev bool) {
	s.cash += tr.NetCash
	if tr.Ticker == "" {
		return // pure cash movement
	}

	pos, ok := s.positions[tr.Ticker]
	if !ok {
		pos = &positionState{ticker: tr.Ticker}
		s.positions[tr.Ticker] = pos
		s.holdings[tr.Ticker] = Holding{}
		if hasPrev {
			// Anchor the series at zero shares on the previous date so a
			// chart starts flat before the first fill.
			price, found := s.valuations.PriceAsOf(tr.Ticker, prev)
			if !found || price <= 0 {
				price = tr.Price
			}
			pos.history = append(pos.history, PositionHistoryPoint{Date: prev, Price: price})
		}
	}

	fees := math.Abs(tr.Fees)
	commissions := math.Abs(tr.Commissions)
	switch {
	case tr.Type.BuySide():
		if tr.Quantity > lotEpsilon {
			costPerShare := (tr.Quantity*tr.Price + commissions + fees) / tr.Quantity
			pos.lots.open(tr.Date, tr.Quantity, costPerShare)
			pos.shares += tr.Quantity
		}
	case tr.Type.SellSide():
		if tr.Quantity > lotEpsilon {
			proceeds := tr.Quantity*tr.Price - commissions - fees
			costOfSoldShares := pos.lots.sellHIFO(tr.Quantity)
			pos.realized += proceeds - costOfSoldShares
			pos.shares -= tr.Quantity
		}
	}

	h := s.holdings[tr.Ticker]
	h.Shares = pos.shares
	if tr.Price > 0 {
		h.Price = tr.Price
	}
	s.holdings[tr.Ticker] = h
}
