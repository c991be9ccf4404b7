package portfolio

import (
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"strings"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

// fxMarkers identify FX spot transactions and the EURUSD/USDEUR cash pair,
// which are currency plumbing rather than positions and must not enter the
// simulation.
var fxMarkers = []string{"fx spot", "eurusd", "usdeur", "eur/usd", "usd/eur"}

// isFXRow reports whether a row is an FX spot or currency-pair artifact,
// matched case-insensitively against ticker or description.
func isFXRow(ticker, description string) bool {
	t := strings.ToLower(ticker)
	d := strings.ToLower(description)
	for _, marker := range fxMarkers {
		if strings.Contains(t, marker) || strings.Contains(d, marker) {
			return true
		}
	}
	return false
}

// fallbackID derives a deterministic identifier for a row that carries
// none, so that re-runs over the same source stay byte-identical.
func fallbackID(rowIndex int, on date.Date, ticker string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s", rowIndex, on, ticker)
	return fmt.Sprintf("TX-%016x", h.Sum64())
}

// NormalizeBlotter turns the raw transaction table into canonical Trade
// records. Blank or footer rows, FX plumbing, and rows without a parseable
// date are dropped; every surviving row becomes exactly one Trade keyed by
// its canonical ticker.
func NormalizeBlotter(t Table, cfg Config) []*Trade {
	idCol, _ := t.Column("transaction id", "trade id", "reference", "id")
	tickerCol, _ := t.Column("ticker", "symbol")
	descCol, _ := t.Column("description", "security name", "name")
	dateCol, _ := t.Column("trade date", "transaction date", "date")
	typeCol, _ := t.Column("transaction type", "type", "activity")
	qtyCol, _ := t.Column("quantity", "shares", "qty")
	priceCol, _ := t.Column("price")
	currencyCol, _ := t.Column("currency", "ccy")
	netCol, _ := t.Column("net amount", "net proceeds", "net cash", "proceeds", "amount")
	feesCol, _ := t.Column("fee")
	commCol, _ := t.Column("commission")

	var trades []*Trade
	for i, row := range t.Rows {
		id := row.field(idCol)
		rawTicker := row.field(tickerCol)
		rawType := row.field(typeCol)
		if id == "" && rawTicker == "" && rawType == "" {
			continue // blank or footer row
		}
		description := row.field(descCol)
		if isFXRow(rawTicker, description) {
			continue
		}
		on, err := date.Parse(row.field(dateCol))
		if err != nil {
			log.Printf("blotter: skipping row %d: %v", i, err)
			continue
		}
		ticker := CanonicalTicker(rawTicker, description)
		if id == "" {
			id = fallbackID(i, on, ticker)
		}
		trades = append(trades, &Trade{
			ID:          id,
			Description: description,
			Ticker:      ticker,
			Date:        on,
			Type:        ParseTxType(rawType),
			Quantity:    math.Abs(parseAmount(row.field(qtyCol))),
			Price:       parseAmount(row.field(priceCol)),
			Currency:    row.field(currencyCol),
			NetCash:     parseAmount(row.field(netCol)),
			Fees:        parseAmount(row.field(feesCol)),
			Commissions: parseAmount(row.field(commCol)),
		})
	}
	return trades
}
