package portfolio

import (
	"math"
	"testing"
	"time"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

// approx absorbs float rounding from the fixed-rate currency conversion.
func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

var valuationColumns = []string{"Date", "Ticker", "Description", "Quantity", "Market Price", "Market Value"}

func valuationRow(day, ticker, desc, qty, price, value string) Row {
	return Row{
		"Date": day, "Ticker": ticker, "Description": desc,
		"Quantity": qty, "Market Price": price, "Market Value": value,
	}
}

func valuationTable(rows ...Row) Table {
	return Table{Name: "Daily Portfolio History", Columns: valuationColumns, Rows: rows}
}

func TestIngestValuations(t *testing.T) {
	table := valuationTable(
		valuationRow("2025-01-02", "AAPL", "APPLE INC", "100", "150.00", "15,000.00"),
		valuationRow("2025-01-02", "MSFT", "MICROSOFT", "10", "400.00", "4,000.00"),
		valuationRow("2025-01-03", "AAPL", "APPLE INC", "100", "151.00", "15,100.00"),
		valuationRow("bad date", "AAPL", "APPLE INC", "100", "151.00", "15,100.00"),
		valuationRow("2025-01-03", "EURUSD", "FX SPOT", "1", "1.1", "1.1"),
	)

	v := IngestValuations(table, DefaultConfig())

	if aum, ok := v.AUM.Get(date.New(2025, time.January, 2)); !ok || aum != 19000 {
		t.Errorf("AUM on 01-02 = %v, %v; want 19000", aum, ok)
	}
	if aum, ok := v.AUM.Get(date.New(2025, time.January, 3)); !ok || aum != 15100 {
		t.Errorf("AUM on 01-03 = %v, %v; want 15100 (FX row excluded)", aum, ok)
	}
	if p, ok := v.Price("AAPL", date.New(2025, time.January, 3)); !ok || p != 151 {
		t.Errorf("Price(AAPL, 01-03) = %v, %v; want 151", p, ok)
	}
	if got := len(v.Dates()); got != 2 {
		t.Errorf("observed %d dates, want 2", got)
	}
	if first := v.FirstSeen["AAPL"]; first != date.New(2025, time.January, 2) {
		t.Errorf("FirstSeen[AAPL] = %s", first)
	}
	if last := v.LastSeen["AAPL"]; last != date.New(2025, time.January, 3) {
		t.Errorf("LastSeen[AAPL] = %s", last)
	}
}

func TestIngestValuations_NegligibleRowsNotSeen(t *testing.T) {
	table := valuationTable(
		valuationRow("2025-01-02", "AAPL", "APPLE INC", "0", "150.00", "0.001"),
		valuationRow("2025-01-03", "AAPL", "APPLE INC", "1", "150.00", "150.00"),
	)
	v := IngestValuations(table, DefaultConfig())
	if first := v.FirstSeen["AAPL"]; first != date.New(2025, time.January, 3) {
		t.Errorf("FirstSeen[AAPL] = %s, want 2025-01-03 (negligible row ignored)", first)
	}
}

func TestIngestValuations_AlternateClassBlending(t *testing.T) {
	table := valuationTable(
		// Primary ADR class and EUR ordinary class on the same day.
		valuationRow("2025-01-02", "ARGX", "ARGENX SE ADR", "100", "50.00", "5,000.00"),
		valuationRow("2025-01-02", "ARGX", "ARGENX SE ORD SHS", "100", "40.00", "4,000.00"),
		// Only the ordinary class on the next day.
		valuationRow("2025-01-03", "ARGX", "ARGENX SE ORD SHS", "100", "40.00", "4,000.00"),
	)

	v := IngestValuations(table, DefaultConfig())

	on := date.New(2025, time.January, 2)
	// Blended price: (5000 + 4000×1.17) / 200 = 48.40.
	if p, ok := v.Price("ARGX", on); !ok || !approx(p, 48.40) {
		t.Errorf("blended Price = %v, %v; want 48.40", p, ok)
	}
	// Both classes' USD-equivalent values land in the AUM total.
	if aum, ok := v.AUM.Get(on); !ok || !approx(aum, 9680) {
		t.Errorf("AUM = %v, %v; want 9680", aum, ok)
	}

	// Single-class fallback: value and shares are both positive, so the
	// blend is still value over shares, all in the reporting currency.
	next := date.New(2025, time.January, 3)
	if p, ok := v.Price("ARGX", next); !ok || !approx(p, 46.8) {
		t.Errorf("single-class Price = %v, %v; want 46.8", p, ok)
	}
}
