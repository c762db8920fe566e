package xlcell

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Copy copies src onto dst: content first (by kind), then style, comment and
// hyperlink, in that order. A blank source still carries its style, comment
// and hyperlink state across, which includes removing the target's hyperlink
// when the source has none.
//
// An empty src is a no-op and leaves dst entirely untouched. An empty dst is
// an error. Either ref may carry a "Sheet!" qualifier overriding the sheet
// argument, so cross-sheet copies work.
func Copy(f *excelize.File, sheet, src, dst string) error {
	if src == "" {
		return nil
	}
	if dst == "" {
		return fmt.Errorf("copy: empty target cell")
	}

	srcSheet, srcCell := splitRef(sheet, src)
	dstSheet, dstCell := splitRef(sheet, dst)
	var err error
	if srcCell, err = normCell(srcCell); err != nil {
		return fmt.Errorf("copy: source %q: %w", src, err)
	}
	if dstCell, err = normCell(dstCell); err != nil {
		return fmt.Errorf("copy: target %q: %w", dst, err)
	}

	if err := copyValue(f, srcSheet, srcCell, dstSheet, dstCell); err != nil {
		return err
	}
	if err := copyStyle(f, srcSheet, srcCell, dstSheet, dstCell); err != nil {
		return err
	}
	if err := copyComment(f, srcSheet, srcCell, dstSheet, dstCell); err != nil {
		return err
	}
	return copyHyperlink(f, srcSheet, srcCell, dstSheet, dstCell)
}

// Clear resets a cell to an empty, unformatted state: value and formula are
// removed, the style reverts to the default, and any comment or hyperlink is
// deleted. An empty cell name is a no-op; clearing an already blank cell
// changes nothing.
func Clear(f *excelize.File, sheet, cell string) error {
	if cell == "" {
		return nil
	}
	sheet, body := splitRef(sheet, cell)
	body, err := normCell(body)
	if err != nil {
		return fmt.Errorf("clear: %q: %w", cell, err)
	}

	if err := f.SetCellFormula(sheet, body, ""); err != nil {
		return fmt.Errorf("clear %s!%s: %w", sheet, body, err)
	}
	if err := f.SetCellDefault(sheet, body, ""); err != nil {
		return fmt.Errorf("clear %s!%s: %w", sheet, body, err)
	}
	if err := f.SetCellStyle(sheet, body, body, 0); err != nil {
		return fmt.Errorf("clear %s!%s: %w", sheet, body, err)
	}
	if err := f.DeleteComment(sheet, body); err != nil {
		return fmt.Errorf("clear %s!%s: %w", sheet, body, err)
	}
	if _, err := RemoveHyperlink(f, sheet, body); err != nil {
		return err
	}
	return nil
}

func copyValue(f *excelize.File, srcSheet, srcCell, dstSheet, dstCell string) error {
	kind, err := CellKind(f, srcSheet, srcCell)
	if err != nil {
		return fmt.Errorf("copy %s!%s: %w", srcSheet, srcCell, err)
	}
	switch kind {
	case KindNumber:
		raw, err := f.GetCellValue(srcSheet, srcCell, excelize.Options{RawCellValue: true})
		if err != nil {
			return err
		}
		// Raw text keeps the exact stored representation.
		return f.SetCellDefault(dstSheet, dstCell, raw)
	case KindText:
		runs, err := f.GetCellRichText(srcSheet, srcCell)
		if err != nil {
			return err
		}
		if len(runs) > 0 {
			return f.SetCellRichText(dstSheet, dstCell, runs)
		}
		v, err := f.GetCellValue(srcSheet, srcCell)
		if err != nil {
			return err
		}
		return f.SetCellStr(dstSheet, dstCell, v)
	case KindFormula:
		formula, err := f.GetCellFormula(srcSheet, srcCell)
		if err != nil {
			return err
		}
		return f.SetCellFormula(dstSheet, dstCell, formula)
	case KindBool:
		raw, err := f.GetCellValue(srcSheet, srcCell, excelize.Options{RawCellValue: true})
		if err != nil {
			return err
		}
		return f.SetCellBool(dstSheet, dstCell, raw == "1" || strings.EqualFold(raw, "true"))
	case KindError:
		raw, err := f.GetCellValue(srcSheet, srcCell, excelize.Options{RawCellValue: true})
		if err != nil {
			return err
		}
		return setCellError(f, dstSheet, dstCell, raw)
	}
	// Blank source: no value action, the target keeps its value.
	return nil
}

func copyStyle(f *excelize.File, srcSheet, srcCell, dstSheet, dstCell string) error {
	styleID, err := f.GetCellStyle(srcSheet, srcCell)
	if err != nil {
		return err
	}
	// Target shares the source's style ID rather than an independent copy.
	return f.SetCellStyle(dstSheet, dstCell, dstCell, styleID)
}

func copyComment(f *excelize.File, srcSheet, srcCell, dstSheet, dstCell string) error {
	comments, err := f.GetComments(srcSheet)
	if err != nil {
		return err
	}
	var src *excelize.Comment
	for i := range comments {
		if comments[i].Cell == srcCell {
			src = &comments[i]
			break
		}
	}

	if err := f.DeleteComment(dstSheet, dstCell); err != nil {
		return err
	}
	if src == nil {
		return nil
	}

	c := *src
	c.Cell = dstCell
	if len(c.Paragraph) > 0 {
		// AddComment writes Text and Paragraph as separate runs; keep the
		// richer form to avoid doubling the text.
		c.Text = ""
	}
	return f.AddComment(dstSheet, c)
}

func copyHyperlink(f *excelize.File, srcSheet, srcCell, dstSheet, dstCell string) error {
	has, target, err := f.GetCellHyperLink(srcSheet, srcCell)
	if err != nil {
		return err
	}
	if !has {
		_, err := RemoveHyperlink(f, dstSheet, dstCell)
		return err
	}

	rec, ok, err := cellHyperlinkRecord(f, srcSheet, srcCell)
	if err != nil {
		return err
	}
	linkType := "External"
	if ok && rec.Location != "" {
		linkType = "Location"
		target = rec.Location
	}

	var opts []excelize.HyperlinkOpts
	if ok && (rec.Display != "" || rec.Tooltip != "") {
		var o excelize.HyperlinkOpts
		if rec.Display != "" {
			display := rec.Display
			o.Display = &display
		}
		if rec.Tooltip != "" {
			tooltip := rec.Tooltip
			o.Tooltip = &tooltip
		}
		opts = append(opts, o)
	}
	return f.SetCellHyperLink(dstSheet, dstCell, target, linkType, opts...)
}
