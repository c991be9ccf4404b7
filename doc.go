// Package portfolio reconciles two imperfectly-aligned records of a trading
// portfolio, a transaction blotter and a periodic valuation history, into
// one consistent daily time series per security, with per-lot realized and
// unrealized profit-and-loss computed under a Highest-In-First-Out (HIFO)
// convention.
//
// The core functionalities include:
//   - Security Resolution: Classifying instruments as equities or derivatives,
//     detecting alternate share classes, and producing the canonical ticker
//     used consistently by both ingestion paths.
//   - Blotter Normalization: Turning loosely typed transaction rows into
//     canonical Trade records, tolerant of currency formatting and
//     parenthesis-negative notation.
//   - Alternate-Class Consolidation: Merging same-day, same-direction trades
//     of a dual-listed instrument's two classes into one weighted-average
//     trade in the reporting currency.
//   - Valuation Ingestion: Building per-date portfolio value and per-ticker
//     price series from periodic valuation snapshots.
//   - Portfolio Simulation: A strict left-to-right fold over the unified
//     timeline that tracks cash, holdings, and per-ticker tax lot books,
//     emitting one portfolio snapshot per date and one history point per
//     ticker per date.
//
// This package serves as the foundational logic for the `tva` command-line
// tool; file decoding lives in the xlsx package and report rendering in the
// renderer package.
package portfolio
