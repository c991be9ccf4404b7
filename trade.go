package portfolio

import (
	"strings"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

// TxType is the transaction type vocabulary of the blotter. Direction is
// carried solely by the type: a Trade's quantity is always a non-negative
// magnitude.
type TxType string

const (
	Buy           TxType = "Buy"
	Cover         TxType = "Cover"
	StockDividend TxType = "Stock Dividend"
	PairOff       TxType = "Pair-off"
	Sell          TxType = "Sell"
	Short         TxType = "Short"
	Other         TxType = "Other"
)

// ParseTxType maps the free-text type cell onto the fixed vocabulary.
// Anything unrecognized (cash movements, journal entries) becomes Other.
func ParseTxType(s string) TxType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "bot", "bought", "buy to open":
		return Buy
	case "cover", "buy to cover", "buy to close":
		return Cover
	case "stock dividend", "stock div", "stk div":
		return StockDividend
	case "pair-off", "pair off", "pairoff":
		return PairOff
	case "sell", "sold", "sell to close":
		return Sell
	case "short", "sell short", "sell to open", "shrt":
		return Short
	default:
		return Other
	}
}

// BuySide reports whether the type increases the share count.
func (t TxType) BuySide() bool {
	switch t {
	case Buy, Cover, StockDividend, PairOff:
		return true
	}
	return false
}

// SellSide reports whether the type decreases the share count.
func (t TxType) SellSide() bool { return t == Sell || t == Short }

// Trade is one canonical, immutable transaction from the normalized
// blotter.
type Trade struct {
	ID          string
	Description string
	Ticker      string // canonical ticker, see CanonicalTicker
	Date        date.Date
	Type        TxType
	Quantity    float64 // always ≥ 0; direction is implied by Type
	Price       float64
	Currency    string
	NetCash     float64 // net cash proceeds, signed
	Fees        float64
	Commissions float64
}
