// Package scan parses barcode label strings in the |SKU|BatchNo| format.
package scan

import (
	"errors"
	"strings"
)

// ErrInvalidLabel is returned when a scanned string does not carry both a SKU
// and a batch number.
var ErrInvalidLabel = errors.New("invalid label format, expected |SKU|batchNumber|")

// ParseLabel splits a scanned label on '|', drops empty segments and trims
// whitespace. The first segment is the SKU, the second the batch number.
// Literal '|' inside a field cannot be escaped; that is a limitation of the
// label format itself.
func ParseLabel(raw string) (sku, batchNo string, err error) {
	parts := make([]string, 0, 2)
	for _, p := range strings.Split(raw, "|") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) < 2 {
		return "", "", ErrInvalidLabel
	}
	return parts[0], parts[1], nil
}
