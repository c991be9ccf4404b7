package portfolio

import (
	"testing"
	"time"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

func finalizeSingle(t *testing.T, pos *positionState) Position {
	t.Helper()
	s := &simulator{
		valuations: NewValuationHistory(),
		holdings:   map[string]Holding{pos.ticker: {Shares: pos.shares}},
		positions:  map[string]*positionState{pos.ticker: pos},
	}
	out := s.finalize(nil)
	if len(out) != 1 {
		t.Fatalf("got %d positions, want 1", len(out))
	}
	return out[0]
}

func TestFinalize_MaterialityBoundary(t *testing.T) {
	// Exited position that averaged exactly 1% of AUM: material. The
	// comparator is inclusive.
	p := finalizeSingle(t, &positionState{ticker: "AAPL", sizeSum: 1.0, daysHeld: 1})
	if p.Small {
		t.Errorf("avg size exactly 1.00%% marked small")
	}

	// Exited position under the threshold: small.
	p = finalizeSingle(t, &positionState{ticker: "AAPL", sizeSum: 0.5, daysHeld: 1})
	if !p.Small {
		t.Errorf("avg size 0.50%% not marked small")
	}

	// Still held: never small, however tiny.
	p = finalizeSingle(t, &positionState{ticker: "AAPL", shares: 5, sizeSum: 0.01, daysHeld: 1})
	if p.Small {
		t.Errorf("held position marked small")
	}
}

func TestFinalize_MaterialityThroughSimulation(t *testing.T) {
	d1 := date.New(2025, time.January, 2)
	d2 := date.New(2025, time.January, 3)

	v := NewValuationHistory()
	v.dates[d1] = struct{}{}
	v.AUM.AppendAdd(d1, 10000)

	// Held one day at exactly 1% of AUM, then exited.
	trades := []*Trade{
		{ID: "T1", Ticker: "AAPL", Date: d1, Type: Buy, Quantity: 1, Price: 100, NetCash: -100},
		{ID: "T2", Ticker: "AAPL", Date: d2, Type: Sell, Quantity: 1, Price: 100, NetCash: 100},
	}
	sim := simulate(trades, v, Timeline(trades, v))
	out := sim.finalize(trades)
	if len(out) != 1 {
		t.Fatalf("got %d positions, want 1", len(out))
	}
	p := out[0]
	if !p.AvgSize.Equal(Percent(1.0)) {
		t.Fatalf("AvgSize = %s, want 1.00%%", p.AvgSize)
	}
	if p.Small {
		t.Errorf("exited position at the 1%% boundary marked small")
	}
	if len(p.Trades) != 2 {
		t.Errorf("got %d attached trades, want 2", len(p.Trades))
	}
}

func TestClipHistory(t *testing.T) {
	days := make([]date.Date, 7)
	points := make([]PositionHistoryPoint, 7)
	for i := range points {
		days[i] = date.New(2025, time.January, 2+i)
		points[i] = PositionHistoryPoint{Date: days[i]}
	}

	// Window [d3, d5] keeps one pad point on each side: [d2, d6].
	got := clipHistory(points, days[2], days[4])
	if len(got) != 5 {
		t.Fatalf("got %d points, want 5", len(got))
	}
	if got[0].Date != days[1] || got[len(got)-1].Date != days[5] {
		t.Errorf("clipped to [%s, %s], want [%s, %s]",
			got[0].Date, got[len(got)-1].Date, days[1], days[5])
	}

	// Window spanning the whole series clips nothing.
	got = clipHistory(points, days[0], days[6])
	if len(got) != 7 {
		t.Errorf("got %d points, want the full series", len(got))
	}

	// A zero bound disables clipping.
	got = clipHistory(points, date.Date{}, days[4])
	if len(got) != 7 {
		t.Errorf("zero lower bound: got %d points, want the full series", len(got))
	}

	// Bounds that cannot be located fall back to the full series.
	after := date.New(2026, time.June, 1)
	got = clipHistory(points, after, after.Add(5))
	if len(got) != 7 {
		t.Errorf("unlocatable window: got %d points, want the full series", len(got))
	}
}
