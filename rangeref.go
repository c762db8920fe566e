package xlcell

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Range is a rectangular block of cells on a single sheet. Coordinates are
// 1-based, matching excelize's convention, and are normalized so that
// (FromCol, FromRow) is the upper-left corner.
type Range struct {
	Sheet   string
	FromCol int
	FromRow int
	ToCol   int
	ToRow   int
}

// ParseRange parses a range reference like "A1:C3", a single cell "A1", or a
// sheet-qualified form "Sheet2!A1:C3" (which overrides the sheet argument).
// Corners given in any order are normalized.
func ParseRange(sheet, ref string) (Range, error) {
	sheet, body := splitRef(sheet, ref)
	if body == "" {
		return Range{}, fmt.Errorf("empty range reference")
	}

	first, last, ok := strings.Cut(body, ":")
	if !ok {
		last = first
	}

	fc, fr, err := cellCoords(first)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	lc, lr, err := cellCoords(last)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if lc < fc {
		fc, lc = lc, fc
	}
	if lr < fr {
		fr, lr = lr, fr
	}
	return Range{Sheet: sheet, FromCol: fc, FromRow: fr, ToCol: lc, ToRow: lr}, nil
}

// First returns the name of the upper-left cell, the first cell in
// enumeration order.
func (r Range) First() string {
	name, _ := excelize.CoordinatesToCellName(r.FromCol, r.FromRow)
	return name
}

// Last returns the name of the lower-right cell.
func (r Range) Last() string {
	name, _ := excelize.CoordinatesToCellName(r.ToCol, r.ToRow)
	return name
}

// Cells returns every cell name covered by the range, left to right then top
// to bottom. The first element is always First().
func (r Range) Cells() []string {
	cells := make([]string, 0, (r.ToRow-r.FromRow+1)*(r.ToCol-r.FromCol+1))
	for row := r.FromRow; row <= r.ToRow; row++ {
		for col := r.FromCol; col <= r.ToCol; col++ {
			name, _ := excelize.CoordinatesToCellName(col, row)
			cells = append(cells, name)
		}
	}
	return cells
}

// Ref returns the "A1:C3" form without the sheet name. A single-cell range
// collapses to its cell name.
func (r Range) Ref() string {
	if r.FromCol == r.ToCol && r.FromRow == r.ToRow {
		return r.First()
	}
	return r.First() + ":" + r.Last()
}

// String returns the sheet-qualified form when a sheet is set.
func (r Range) String() string {
	if r.Sheet == "" {
		return r.Ref()
	}
	return r.Sheet + "!" + r.Ref()
}
