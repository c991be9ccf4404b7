// Package xlsx decodes the source Excel workbook into the row tables the
// engine consumes. Sheets are discovered by case-insensitive substring
// against a small candidate list, the same way columns are discovered
// inside the engine.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	portfolio "github.com/ashvinbashyam3/trade-visualization-agr"
)

// Sheet name candidates, tried in order.
var (
	transactionSheets = []string{"transaction", "trade", "blotter"}
	valuationSheets   = []string{"history", "daily", "valuation", "position"}
)

// Decode opens a workbook and returns the transaction and valuation tables.
// A missing valuation sheet degrades to an empty table; a missing
// transaction sheet is a hard failure, since nothing can be reconciled
// without it.
func Decode(path string) (blotter, valuations portfolio.Table, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return blotter, valuations, fmt.Errorf("cannot open workbook %q: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	txSheet, ok := findSheet(sheets, transactionSheets, "")
	if !ok {
		return blotter, valuations, fmt.Errorf("no transaction sheet in %q (sheets: %s)",
			path, strings.Join(sheets, ", "))
	}
	if blotter, err = decodeSheet(f, txSheet); err != nil {
		return blotter, valuations, err
	}

	valSheet, ok := findSheet(sheets, valuationSheets, txSheet)
	if !ok {
		return blotter, portfolio.Table{}, nil
	}
	valuations, err = decodeSheet(f, valSheet)
	return blotter, valuations, err
}

// findSheet returns the first sheet whose name contains any candidate,
// matched case-insensitively, skipping the already-claimed sheet.
func findSheet(sheets, candidates []string, claimed string) (string, bool) {
	for _, candidate := range candidates {
		for _, name := range sheets {
			if name == claimed {
				continue
			}
			if strings.Contains(strings.ToLower(name), candidate) {
				return name, true
			}
		}
	}
	return "", false
}

// decodeSheet reads one sheet into a Table. The first row with any
// non-blank cell is the header; short rows are padded with blanks.
func decodeSheet(f *excelize.File, name string) (portfolio.Table, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return portfolio.Table{}, fmt.Errorf("cannot read sheet %q: %w", name, err)
	}

	table := portfolio.Table{Name: name}
	for _, cells := range rows {
		if table.Columns == nil {
			if !blankRow(cells) {
				table.Columns = cells
			}
			continue
		}
		if blankRow(cells) {
			continue
		}
		row := make(portfolio.Row, len(table.Columns))
		for j, header := range table.Columns {
			if j < len(cells) {
				row[header] = cells[j]
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
