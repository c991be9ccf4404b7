package portfolio

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ashvinbashyam3/trade-visualization-agr/date"
)

// consolidationKey groups same-day, same-direction trades of a dual-listed
// instrument.
type consolidationKey struct {
	Date date.Date
	Type TxType
}

// ConsolidateAlternateClasses merges same-day, same-direction trades of
// each configured dual-listed instrument's two classes into a single
// weighted-average trade in the reporting currency, then re-merges with the
// untouched trades and re-sorts the full list by date. Ordering within a
// date is stable.
func ConsolidateAlternateClasses(trades []*Trade, cfg Config) []*Trade {
	out := trades
	for _, listing := range cfg.Listings {
		out = consolidateListing(out, listing, cfg.ReportingCurrency)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func consolidateListing(trades []*Trade, listing AlternateListing, reportingCurrency string) []*Trade {
	var targets []*Trade
	var rest []*Trade
	for _, tr := range trades {
		if tr.Ticker == listing.PrimaryTicker {
			targets = append(targets, tr)
		} else {
			rest = append(rest, tr)
		}
	}
	if len(targets) == 0 {
		return trades
	}

	// Convert the alternate class into the reporting currency first, so the
	// weighted average below is taken over a single currency. Trades are
	// immutable: conversion works on copies.
	rate := decimal.NewFromFloat(listing.ConversionRate)
	for i, tr := range targets {
		if !isAlternateClass(tr.Description, tr.Currency) {
			continue
		}
		converted := *tr
		converted.Price = decimal.NewFromFloat(tr.Price).Mul(rate).InexactFloat64()
		converted.Currency = reportingCurrency
		targets[i] = &converted
	}

	groups := make(map[consolidationKey][]*Trade)
	var order []consolidationKey
	for _, tr := range targets {
		key := consolidationKey{Date: tr.Date, Type: tr.Type}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], tr)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].Date != order[j].Date {
			return order[i].Date.Before(order[j].Date)
		}
		return order[i].Type < order[j].Type
	})

	for _, key := range order {
		members := groups[key]
		shares := decimal.Zero
		notional := decimal.Zero
		var net, fees, commissions float64
		for _, tr := range members {
			q := decimal.NewFromFloat(tr.Quantity)
			shares = shares.Add(q)
			notional = notional.Add(q.Mul(decimal.NewFromFloat(tr.Price)))
			net += tr.NetCash
			fees += tr.Fees
			commissions += tr.Commissions
		}
		if !shares.IsPositive() {
			// Nothing to average over: keep the members as they are so
			// their cash impact survives.
			rest = append(rest, members...)
			continue
		}
		first := members[0]
		rest = append(rest, &Trade{
			// The identifier is a deterministic composite of date and type,
			// unique and stable across re-runs.
			ID:          fmt.Sprintf("CONS-%s-%s", key.Date, key.Type),
			Description: first.Description,
			Ticker:      listing.PrimaryTicker,
			Date:        key.Date,
			Type:        key.Type,
			Quantity:    shares.InexactFloat64(),
			Price:       notional.Div(shares).InexactFloat64(),
			Currency:    reportingCurrency,
			NetCash:     net,
			Fees:        fees,
			Commissions: commissions,
		})
	}
	return rest
}
