package xlcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSetCellError_StoresCode(t *testing.T) {
	f := newTestFile(t)
	require.NoError(t, setCellError(f, testSheet, "A1", "#DIV/0!"))

	// The code must live in the cell's V field, not in a leftover
	// inline-string node, or every read of the error cell comes back empty.
	typ, val, ok := storedCell(t, f, testSheet, "A1")
	require.True(t, ok)
	assert.Equal(t, "e", typ)
	assert.Equal(t, "#DIV/0!", val)

	raw, err := f.GetCellValue(testSheet, "A1", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "#DIV/0!", raw)
	assert.Equal(t, "#DIV/0!", cellValue(t, f, testSheet, "A1"))
	assert.Equal(t, KindError, kindOf(t, f, testSheet, "A1"))
}

func TestSetCellError_SurvivesRoundTrip(t *testing.T) {
	f := newTestFile(t)
	require.NoError(t, setCellError(f, testSheet, "A1", "#N/A"))

	out := roundTrip(t, f)
	assert.Equal(t, "#N/A", cellValue(t, out, testSheet, "A1"))
	assert.Equal(t, KindError, kindOf(t, out, testSheet, "A1"))
}
