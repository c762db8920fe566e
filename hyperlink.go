package xlcell

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RemoveResult reports what RemoveHyperlink did.
type RemoveResult int

const (
	// HyperlinkAbsent means the cell had no hyperlink to remove.
	HyperlinkAbsent RemoveResult = iota
	// HyperlinkRemoved means a hyperlink record was deleted from the sheet.
	HyperlinkRemoved
)

// String returns a human-readable name for the RemoveResult.
func (r RemoveResult) String() string {
	if r == HyperlinkRemoved {
		return "Removed"
	}
	return "Absent"
}

// RemoveHyperlink deletes the hyperlink on a cell, if any. excelize exposes
// no public removal API, so the record is dropped from the worksheet's
// internal hyperlink collection (see worksheet.go); the relationship entry
// behind an external link is left in place, same as consumers of the file
// expect for unreferenced relationships.
//
// The result distinguishes a removed hyperlink from an absent one, and a
// non-nil error means the privileged worksheet access failed and the
// hyperlink may still be present. An empty cell name is a no-op.
func RemoveHyperlink(f *excelize.File, sheet, cell string) (RemoveResult, error) {
	if cell == "" {
		return HyperlinkAbsent, nil
	}
	sheet, cell = splitRef(sheet, cell)
	cell, err := normCell(cell)
	if err != nil {
		return HyperlinkAbsent, fmt.Errorf("remove hyperlink: %w", err)
	}

	removed, err := removeHyperlinkRecord(f, sheet, cell)
	if err != nil {
		return HyperlinkAbsent, fmt.Errorf("remove hyperlink %s!%s: %w", sheet, cell, err)
	}
	if removed {
		return HyperlinkRemoved, nil
	}
	return HyperlinkAbsent, nil
}
