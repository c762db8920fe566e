package xlcell

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testSheet = "Sheet1"

// newTestFile creates an in-memory workbook with a single default sheet.
func newTestFile(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	return f
}

// boldStyle creates a bold font style and returns its ID.
func boldStyle(t *testing.T, f *excelize.File) int {
	t.Helper()
	id, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	require.NoError(t, err)
	return id
}

// setComment attaches a plain text comment to a cell.
func setComment(t *testing.T, f *excelize.File, sheet, cell, text string) {
	t.Helper()
	require.NoError(t, f.AddComment(sheet, excelize.Comment{
		Cell:   cell,
		Author: "xlcell",
		Text:   text,
	}))
}

// commentText returns the text of the comment on a cell, or "" when none.
func commentText(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	comments, err := f.GetComments(sheet)
	require.NoError(t, err)
	for _, c := range comments {
		if c.Cell == cell {
			return c.Text
		}
	}
	return ""
}

// setHyperlink attaches an external hyperlink to a cell.
func setHyperlink(t *testing.T, f *excelize.File, sheet, cell, url string) {
	t.Helper()
	require.NoError(t, f.SetCellHyperLink(sheet, cell, url, "External"))
}

// hasHyperlink reports whether the cell carries a hyperlink.
func hasHyperlink(t *testing.T, f *excelize.File, sheet, cell string) bool {
	t.Helper()
	ok, _, err := f.GetCellHyperLink(sheet, cell)
	require.NoError(t, err)
	return ok
}

// cellValue is a require-wrapped GetCellValue.
func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

// kindOf is a require-wrapped CellKind.
func kindOf(t *testing.T, f *excelize.File, sheet, cell string) Kind {
	t.Helper()
	k, err := CellKind(f, sheet, cell)
	require.NoError(t, err)
	return k
}

// cellElement finds the worksheet's stored element for a cell, or reports
// that none exists.
func cellElement(t *testing.T, f *excelize.File, sheet, cell string) (reflect.Value, bool) {
	t.Helper()
	ws, err := worksheetValue(f, sheet)
	require.NoError(t, err)
	rows := ws.Elem().FieldByName("SheetData").FieldByName("Row")
	require.True(t, rows.IsValid() && rows.Kind() == reflect.Slice)
	for i := 0; i < rows.Len(); i++ {
		cells := rows.Index(i).FieldByName("C")
		if !cells.IsValid() || cells.Kind() != reflect.Slice {
			continue
		}
		for j := 0; j < cells.Len(); j++ {
			c := cells.Index(j)
			if stringField(c, "R") == cell {
				return c, true
			}
		}
	}
	return reflect.Value{}, false
}

// storedCell returns the type attribute and raw value of a cell's stored
// element. Assertions about cells covered by a merged region must go through
// here: excelize resolves value reads inside a merged region to the region's
// top-left cell, so the public getters cannot see the covered cell itself.
func storedCell(t *testing.T, f *excelize.File, sheet, cell string) (typ, val string, ok bool) {
	t.Helper()
	c, ok := cellElement(t, f, sheet, cell)
	if !ok {
		return "", "", false
	}
	return stringField(c, "T"), stringField(c, "V"), true
}

// storedCellBlank reports whether a cell's stored element holds no content,
// formula, inline string, or non-default style. A missing element counts as
// blank.
func storedCellBlank(t *testing.T, f *excelize.File, sheet, cell string) bool {
	t.Helper()
	c, ok := cellElement(t, f, sheet, cell)
	if !ok {
		return true
	}
	if stringField(c, "T") != "" || stringField(c, "V") != "" {
		return false
	}
	if s := c.FieldByName("S"); s.IsValid() && s.Kind() == reflect.Int && s.Int() != 0 {
		return false
	}
	for _, name := range []string{"F", "IS"} {
		fld := c.FieldByName(name)
		if fld.IsValid() && fld.Kind() == reflect.Pointer && !fld.IsNil() {
			return false
		}
	}
	return true
}

// roundTrip writes the workbook out and reopens it, verifying the mutated
// file survives excelize's own writer.
func roundTrip(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	out, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}
