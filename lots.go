package portfolio

import (
	"sort"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

// lotEpsilon is the share count below which a lot is considered fully
// consumed and is discarded.
const lotEpsilon = 1e-6

// TaxLot is a discrete batch of shares acquired at a specific cost basis,
// tracked independently until fully sold.
type TaxLot struct {
	Acquired     date.Date
	Shares       float64 // remaining share count, always ≥ 0
	CostPerShare float64 // inclusive of allocated fees and commissions
	Cost         float64 // remaining total cost
}

type lots []TaxLot

// open adds a new lot for an acquisition.
func (l *lots) open(on date.Date, quantity, costPerShare float64) {
	*l = append(*l, TaxLot{
		Acquired:     on,
		Shares:       quantity,
		CostPerShare: costPerShare,
		Cost:         quantity * costPerShare,
	})
}

// sellHIFO consumes shares under Highest-In-First-Out: lots are re-sorted
// by cost-per-share descending and consumed greedily, splitting the final
// partially-consumed lot. It returns the cost basis of the shares actually
// consumed, which covers whatever was available when the sale exceeds the
// open lots.
func (l *lots) sellHIFO(quantityToSell float64) float64 {
	book := *l
	sort.SliceStable(book, func(i, j int) bool { return book[i].CostPerShare > book[j].CostPerShare })

	var costOfSoldShares float64
	remaining := quantityToSell
	kept := book[:0]
	for _, currentLot := range book {
		switch {
		case remaining <= lotEpsilon:
			kept = append(kept, currentLot)
		case currentLot.Shares > remaining+lotEpsilon:
			// Partial sale from this lot.
			costOfSoldPortion := remaining * currentLot.CostPerShare
			costOfSoldShares += costOfSoldPortion
			currentLot.Shares -= remaining
			currentLot.Cost -= costOfSoldPortion
			remaining = 0
			kept = append(kept, currentLot)
		default:
			// Full sale of this lot.
			costOfSoldShares += currentLot.Cost
			remaining -= currentLot.Shares
		}
	}
	*l = kept
	return costOfSoldShares
}

// totalShares sums the remaining shares over all lots.
func (l lots) totalShares() float64 {
	var total float64
	for _, lot := range l {
		total += lot.Shares
	}
	return total
}

// totalCost sums the remaining cost over all lots.
func (l lots) totalCost() float64 {
	var total float64
	for _, lot := range l {
		total += lot.Cost
	}
	return total
}

// averageCost is the average cost basis of the remaining lots, or 0 when no
// shares remain.
func (l lots) averageCost() float64 {
	shares := l.totalShares()
	if shares <= lotEpsilon {
		return 0
	}
	return l.totalCost() / shares
}
