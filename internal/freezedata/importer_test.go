package freezedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTSVFullRow(t *testing.T) {
	rows, errs := ParseTSV("SKU\tBatch\tQty\tUOM\tPrice\nSKU1\tBATCH1\t10.5\tEA\t2.00")

	require.Len(t, rows, 1)
	assert.Empty(t, errs)
	assert.Equal(t, "SKU1", rows[0].Sku)
	assert.Equal(t, "BATCH1", rows[0].BatchNo)
	assert.Equal(t, 10.5, rows[0].Qty)
	assert.Equal(t, "EA", rows[0].Uom)
	assert.Equal(t, 2.00, rows[0].UnitPrice)
}

func TestParseTSVOptionalColumnsDefault(t *testing.T) {
	rows, errs := ParseTSV("header\nSKU1\tBATCH1\t3")

	require.Len(t, rows, 1)
	assert.Empty(t, errs)
	assert.Equal(t, "", rows[0].Uom)
	assert.Equal(t, 0.0, rows[0].UnitPrice)
}

func TestParseTSVHeaderOnly(t *testing.T) {
	rows, errs := ParseTSV("SKU\tBatch\tQty")
	assert.Empty(t, rows)
	assert.Empty(t, errs)
}

func TestParseTSVBadLinesDoNotAbort(t *testing.T) {
	content := "header\n" +
		"SKU1\tBATCH1\t10\n" + // line 2, ok
		"SKU2\tBATCH2\n" + // line 3, too few columns
		"SKU3\tBATCH3\tnot-a-number\n" + // line 4, bad qty
		"SKU4\tBATCH4\t4\tEA\tbad-price\n" + // line 5, bad price
		"SKU5\tBATCH5\t5"

	rows, errs := ParseTSV(content)

	require.Len(t, rows, 2)
	assert.Equal(t, "SKU1", rows[0].Sku)
	assert.Equal(t, "SKU5", rows[1].Sku)

	require.Len(t, errs, 3)
	assert.Contains(t, errs[0], "Line 3")
	assert.Contains(t, errs[1], "Line 4")
	assert.Contains(t, errs[2], "Line 5")
}

func TestParseTSVSkipsBlankLinesAndCRLF(t *testing.T) {
	rows, errs := ParseTSV("header\r\n\r\nSKU1\tBATCH1\t1\r\n\n")

	require.Len(t, rows, 1)
	assert.Empty(t, errs)
	assert.Equal(t, "SKU1", rows[0].Sku)
	assert.Equal(t, 1.0, rows[0].Qty)
}
