package portfolio

import (
	"testing"
	"time"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

func TestConsolidateAlternateClasses(t *testing.T) {
	on := date.New(2025, time.January, 2)
	trades := []*Trade{
		{ID: "T1", Ticker: "ARGX", Description: "ARGENX SE ADR", Date: on, Type: Buy,
			Quantity: 100, Price: 50, Currency: "USD", NetCash: -5000, Fees: 1, Commissions: 2},
		{ID: "T2", Ticker: "ARGX", Description: "ARGENX SE ORD SHS", Date: on, Type: Buy,
			Quantity: 100, Price: 40, Currency: "EUR", NetCash: -4680, Fees: 3, Commissions: 4},
		{ID: "T3", Ticker: "AAPL", Description: "APPLE INC", Date: on.Add(-1), Type: Buy,
			Quantity: 10, Price: 150, Currency: "USD", NetCash: -1500},
	}

	out := ConsolidateAlternateClasses(trades, DefaultConfig())
	if len(out) != 2 {
		t.Fatalf("got %d trades, want 2: %+v", len(out), out)
	}

	// Sorted by date ascending: the untouched AAPL trade comes first.
	if out[0].Ticker != "AAPL" {
		t.Fatalf("expected untouched trade first, got %+v", out[0])
	}

	cons := out[1]
	if cons.Ticker != "ARGX" || cons.Type != Buy || cons.Date != on {
		t.Fatalf("unexpected consolidated trade: %+v", cons)
	}
	if cons.Quantity != 200 {
		t.Errorf("Quantity = %v, want 200", cons.Quantity)
	}
	// Weighted price: (100×50 + 100×40×1.17) / 200 = 48.40 exactly.
	if cons.Price != 48.40 {
		t.Errorf("Price = %v, want 48.40", cons.Price)
	}
	if cons.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cons.Currency)
	}
	if cons.NetCash != -9680 || cons.Fees != 4 || cons.Commissions != 6 {
		t.Errorf("sums wrong: net=%v fees=%v comm=%v", cons.NetCash, cons.Fees, cons.Commissions)
	}
	if cons.ID != "CONS-2025-01-02-Buy" {
		t.Errorf("ID = %q, want a stable composite of date and type", cons.ID)
	}
}

func TestConsolidateAlternateClasses_SeparateDirections(t *testing.T) {
	on := date.New(2025, time.March, 3)
	trades := []*Trade{
		{ID: "T1", Ticker: "ARGX", Description: "ARGENX SE ADR", Date: on, Type: Buy,
			Quantity: 10, Price: 50, Currency: "USD"},
		{ID: "T2", Ticker: "ARGX", Description: "ARGENX SE ADR", Date: on, Type: Sell,
			Quantity: 5, Price: 55, Currency: "USD"},
	}
	out := ConsolidateAlternateClasses(trades, DefaultConfig())
	if len(out) != 2 {
		t.Fatalf("got %d trades, want one per (date, type) group", len(out))
	}
	if out[0].Type == out[1].Type {
		t.Errorf("directions were merged: %+v", out)
	}
}

func TestConsolidateAlternateClasses_NoTargetTrades(t *testing.T) {
	on := date.New(2025, time.March, 3)
	trades := []*Trade{
		{ID: "T1", Ticker: "AAPL", Description: "APPLE INC", Date: on, Type: Buy, Quantity: 1, Price: 10},
	}
	out := ConsolidateAlternateClasses(trades, DefaultConfig())
	if len(out) != 1 || out[0].ID != "T1" {
		t.Fatalf("trades without the target instrument must pass through unchanged: %+v", out)
	}
}
