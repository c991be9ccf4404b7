package portfolio

import (
	"log"
	"sort"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

// Negligible quantities and market values do not count as a sighting of a
// ticker in the valuation feed.
const (
	seenQuantityEpsilon = 1e-6
	seenValueEpsilon    = 0.01
)

// ValuationHistory is the canonical view of the periodic valuation feed:
// the total portfolio value per date, one price series per canonical
// ticker, and the first/last date each ticker was seen with a real
// position.
type ValuationHistory struct {
	// AUM is the total portfolio value per valuation date, in the
	// reporting currency.
	AUM date.History

	FirstSeen map[string]date.Date
	LastSeen  map[string]date.Date

	prices map[string]*date.History
	dates  map[date.Date]struct{}
}

// NewValuationHistory returns an empty valuation history.
func NewValuationHistory() *ValuationHistory {
	return &ValuationHistory{
		FirstSeen: make(map[string]date.Date),
		LastSeen:  make(map[string]date.Date),
		prices:    make(map[string]*date.History),
		dates:     make(map[date.Date]struct{}),
	}
}

// Price returns the valuation price recorded for a ticker on exactly that
// date.
func (v *ValuationHistory) Price(ticker string, on date.Date) (float64, bool) {
	h, ok := v.prices[ticker]
	if !ok {
		return 0, false
	}
	return h.Get(on)
}

// PriceAsOf returns the last valuation price recorded for a ticker on or
// before the given date.
func (v *ValuationHistory) PriceAsOf(ticker string, on date.Date) (float64, bool) {
	h, ok := v.prices[ticker]
	if !ok {
		return 0, false
	}
	return h.ValueAsOf(on)
}

// Dates returns the sorted set of valuation dates observed.
func (v *ValuationHistory) Dates() []date.Date {
	out := make([]date.Date, 0, len(v.dates))
	for on := range v.dates {
		out = append(out, on)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// seen updates the first/last-seen window of a ticker.
func (v *ValuationHistory) seen(ticker string, on date.Date) {
	v.FirstSeen[ticker] = date.Min(v.FirstSeen[ticker], on)
	v.LastSeen[ticker] = date.Max(v.LastSeen[ticker], on)
}

// priceSeries returns the price history of a ticker, creating it on first
// use.
func (v *ValuationHistory) priceSeries(ticker string) *date.History {
	h, ok := v.prices[ticker]
	if !ok {
		h = &date.History{}
		v.prices[ticker] = h
	}
	return h
}

// classBlend accumulates one day of a dual-listed instrument across both of
// its classes, so a single blended price can be derived at the end of
// ingestion.
type classBlend struct {
	shares         float64
	value          float64 // USD-equivalent market value
	primaryPrice   float64
	alternatePrice float64 // already converted to the reporting currency
}

// price derives the blended daily price: total value over total shares when
// both are positive, else whichever single class's price is available,
// preferring the primary class.
func (b classBlend) price() float64 {
	switch {
	case b.shares > 0 && b.value > 0:
		return b.value / b.shares
	case b.primaryPrice > 0:
		return b.primaryPrice
	default:
		return b.alternatePrice
	}
}

// IngestValuations turns the raw valuation table into a ValuationHistory.
// Rows without a parseable date are skipped, FX plumbing is excluded, and
// tickers resolve through the same canonicalization as the blotter so the
// two sources join.
func IngestValuations(t Table, cfg Config) *ValuationHistory {
	dateCol, _ := t.Column("date", "as of")
	tickerCol, _ := t.Column("ticker", "symbol")
	descCol, _ := t.Column("description", "security name", "name")
	valueCol, _ := t.Column("market value", "mkt value", "value")
	priceCol, _ := t.Column("market price", "price")
	qtyCol, _ := t.Column("quantity", "shares", "qty")

	v := NewValuationHistory()
	blends := make(map[string]map[date.Date]*classBlend) // primary ticker → date → blend

	for i, row := range t.Rows {
		on, err := date.Parse(row.field(dateCol))
		if err != nil {
			if row.field(dateCol) != "" {
				log.Printf("valuations: skipping row %d: %v", i, err)
			}
			continue
		}
		rawTicker := row.field(tickerCol)
		description := row.field(descCol)
		if isFXRow(rawTicker, description) {
			continue
		}
		v.dates[on] = struct{}{}

		ticker := CanonicalTicker(rawTicker, description)
		quantity := parseAmount(row.field(qtyCol))
		value := parseAmount(row.field(valueCol))
		price := parseAmount(row.field(priceCol))

		if quantity > seenQuantityEpsilon || value > seenValueEpsilon {
			v.seen(ticker, on)
		}

		listing, dual := cfg.listing(ticker)
		if !dual {
			v.AUM.AppendAdd(on, value)
			if price > 0 {
				v.priceSeries(ticker).Append(on, price)
			}
			continue
		}

		// Dual-listed instrument: accumulate both classes in the reporting
		// currency and derive a single blended price after ingestion.
		alternate := isAlternateClass(description, "")
		if alternate {
			value *= listing.ConversionRate
			price *= listing.ConversionRate
		}
		byDate := blends[ticker]
		if byDate == nil {
			byDate = make(map[date.Date]*classBlend)
			blends[ticker] = byDate
		}
		b := byDate[on]
		if b == nil {
			b = &classBlend{}
			byDate[on] = b
		}
		b.shares += quantity
		b.value += value
		if alternate {
			if price > 0 {
				b.alternatePrice = price
			}
		} else if price > 0 {
			b.primaryPrice = price
		}
		v.AUM.AppendAdd(on, value)
	}

	for ticker, byDate := range blends {
		series := v.priceSeries(ticker)
		for on, b := range byDate {
			if p := b.price(); p > 0 {
				series.Append(on, p)
			}
		}
	}
	return v
}
