package freezedata

import (
	"fmt"
	"strconv"
	"strings"
)

// ImportRow is one parsed baseline line from a TSV import.
type ImportRow struct {
	Sku       string
	BatchNo   string
	Qty       float64
	Uom       string
	UnitPrice float64
}

// ParseTSV parses raw TSV content into baseline rows. The first line is a
// header and is discarded. Bad lines are reported with their 1-based line
// number and do not abort the rest of the batch.
//
// Columns: SKU, batch, qty (required), uom (optional, default ""), unit price
// (optional, default 0). Quantities use the dot decimal separator regardless
// of locale.
func ParseTSV(content string) ([]ImportRow, []string) {
	lines := strings.Split(content, "\n")

	var rows []ImportRow
	var errs []string

	for i, line := range lines {
		if i == 0 {
			continue // header
		}
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		lineNo := i + 1
		columns := strings.Split(line, "\t")
		if len(columns) < 3 {
			errs = append(errs, fmt.Sprintf("Line %d: invalid format - expected at least 3 columns", lineNo))
			continue
		}

		qty, err := strconv.ParseFloat(strings.TrimSpace(columns[2]), 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Line %d: invalid quantity %q", lineNo, strings.TrimSpace(columns[2])))
			continue
		}

		row := ImportRow{
			Sku:     strings.TrimSpace(columns[0]),
			BatchNo: strings.TrimSpace(columns[1]),
			Qty:     qty,
		}
		if len(columns) > 3 {
			row.Uom = strings.TrimSpace(columns[3])
		}
		if len(columns) > 4 {
			price, err := strconv.ParseFloat(strings.TrimSpace(columns[4]), 64)
			if err != nil {
				errs = append(errs, fmt.Sprintf("Line %d: invalid unit price %q", lineNo, strings.TrimSpace(columns[4])))
				continue
			}
			row.UnitPrice = price
		}

		rows = append(rows, row)
	}

	return rows, errs
}
