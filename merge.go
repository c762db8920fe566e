package xlcell

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Merge consolidates a rectangular range into its upper-left cell and
// registers the range as merged on the sheet. The first non-blank cell in
// enumeration order (left to right, top to bottom) supplies the surviving
// content, style, comment and hyperlink, so a non-blank upper-left cell
// always wins. Every other cell in the range is cleared; an all-blank range
// still registers as merged with a blank upper-left cell.
//
// Failures propagate as-is and leave the sheet partially modified; callers
// must treat a failed merge as "sheet may be partially modified".
func Merge(f *excelize.File, sheet, ref string) error {
	rng, err := ParseRange(sheet, ref)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	sheet = rng.Sheet

	first := rng.First()
	copied := false
	for _, cell := range rng.Cells() {
		if !copied {
			kind, err := CellKind(f, sheet, cell)
			if err != nil {
				return fmt.Errorf("merge %s!%s: %w", sheet, cell, err)
			}
			if kind != KindBlank {
				// First non-blank cell wins; copying the upper-left cell
				// onto itself would be the identity, so skip it.
				if cell != first {
					if err := Copy(f, sheet, cell, first); err != nil {
						return err
					}
				}
				copied = true
			}
		}
		if cell != first {
			if err := Clear(f, sheet, cell); err != nil {
				return err
			}
		}
	}

	if err := f.MergeCell(sheet, first, rng.Last()); err != nil {
		return fmt.Errorf("merge %s!%s: %w", sheet, rng.Ref(), err)
	}
	return nil
}
