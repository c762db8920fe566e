package xlcell

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// splitRef resolves a possibly sheet-qualified cell or range reference like
// "Sheet2!B3" against a default sheet name. Quoted sheet names
// ('My Sheet'!A1) are unquoted.
func splitRef(defaultSheet, ref string) (sheet, body string) {
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		return strings.Trim(ref[:idx], "'"), ref[idx+1:]
	}
	return defaultSheet, ref
}

// cellCoords parses a cell name into 1-based column and row coordinates.
// Absolute markers and lowercase column letters are accepted.
func cellCoords(cell string) (col, row int, err error) {
	cell = strings.ToUpper(strings.ReplaceAll(cell, "$", ""))
	return excelize.CellNameToCoordinates(cell)
}

// normCell validates a cell name and returns its canonical form
// ("b3" → "B3", "$A$1" → "A1").
func normCell(cell string) (string, error) {
	col, row, err := cellCoords(cell)
	if err != nil {
		return "", err
	}
	return excelize.CoordinatesToCellName(col, row)
}
