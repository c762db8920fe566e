package xlcell

// Compatibility shim for excelize internals, pinned to the v2.10 worksheet
// layout. excelize has no public API for removing a hyperlink record or for
// writing an error-typed cell, so this file reaches into the parsed
// worksheet structs through reflection (xlsxWorksheet.Hyperlinks,
// xlsxHyperlinks.Hyperlink, xlsxHyperlink.Ref, xlsxC.R/T). Nothing outside
// this file depends on that layout.

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/xuri/excelize/v2"
)

// hyperlinkRecord is the subset of excelize's internal hyperlink entry that
// Copy needs to re-create a link through the public API.
type hyperlinkRecord struct {
	Location string
	Display  string
	Tooltip  string
}

// sheetXMLPath resolves a sheet name to its worksheet XML path by reading
// the unexported sheetMap field of excelize.File. Sheet names match
// case-insensitively, as excelize itself matches them.
func sheetXMLPath(f *excelize.File, sheet string) (string, error) {
	v := reflect.ValueOf(f).Elem().FieldByName("sheetMap")
	if !v.IsValid() {
		return "", fmt.Errorf("excelize.File has no sheetMap field")
	}
	v = reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
	m, ok := v.Interface().(map[string]string)
	if !ok {
		return "", fmt.Errorf("unexpected sheetMap layout %T", v.Interface())
	}
	for name, path := range m {
		if strings.EqualFold(name, sheet) {
			return path, nil
		}
	}
	return "", fmt.Errorf("sheet %q does not exist", sheet)
}

// worksheetValue returns the parsed worksheet struct for a sheet as a
// reflect.Value of pointer kind, forcing excelize's lazy parse first.
func worksheetValue(f *excelize.File, sheet string) (reflect.Value, error) {
	// Any cell read parses and caches the worksheet struct.
	if _, err := f.GetCellValue(sheet, "A1"); err != nil {
		return reflect.Value{}, err
	}
	path, err := sheetXMLPath(f, sheet)
	if err != nil {
		return reflect.Value{}, err
	}
	ws, ok := f.Sheet.Load(path)
	if !ok {
		return reflect.Value{}, fmt.Errorf("worksheet %q not cached at %q", sheet, path)
	}
	v := reflect.ValueOf(ws)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("unexpected worksheet cache entry %T", ws)
	}
	return v, nil
}

// stringField reads a string field by name, tolerating layout drift across
// excelize versions.
func stringField(v reflect.Value, name string) string {
	fld := v.FieldByName(name)
	if !fld.IsValid() || fld.Kind() != reflect.String {
		return ""
	}
	return fld.String()
}

// cellHyperlinkRecord reads the hyperlink entry for a cell, if one exists.
func cellHyperlinkRecord(f *excelize.File, sheet, cell string) (hyperlinkRecord, bool, error) {
	ws, err := worksheetValue(f, sheet)
	if err != nil {
		return hyperlinkRecord{}, false, err
	}
	links := ws.Elem().FieldByName("Hyperlinks")
	if !links.IsValid() || links.Kind() != reflect.Pointer {
		return hyperlinkRecord{}, false, fmt.Errorf("worksheet Hyperlinks field missing")
	}
	if links.IsNil() {
		return hyperlinkRecord{}, false, nil
	}
	list := links.Elem().FieldByName("Hyperlink")
	if !list.IsValid() || list.Kind() != reflect.Slice {
		return hyperlinkRecord{}, false, fmt.Errorf("worksheet hyperlink list missing")
	}
	for i := 0; i < list.Len(); i++ {
		e := list.Index(i)
		if stringField(e, "Ref") != cell {
			continue
		}
		return hyperlinkRecord{
			Location: stringField(e, "Location"),
			Display:  stringField(e, "Display"),
			Tooltip:  stringField(e, "Tooltip"),
		}, true, nil
	}
	return hyperlinkRecord{}, false, nil
}

// removeHyperlinkRecord deletes the hyperlink entry for a cell from the
// worksheet's hyperlink collection. The sheet-rels relationship behind an
// external link stays behind, which consumers ignore.
func removeHyperlinkRecord(f *excelize.File, sheet, cell string) (bool, error) {
	ws, err := worksheetValue(f, sheet)
	if err != nil {
		return false, err
	}
	links := ws.Elem().FieldByName("Hyperlinks")
	if !links.IsValid() || links.Kind() != reflect.Pointer {
		return false, fmt.Errorf("worksheet Hyperlinks field missing")
	}
	if links.IsNil() {
		return false, nil
	}
	list := links.Elem().FieldByName("Hyperlink")
	if !list.IsValid() || list.Kind() != reflect.Slice {
		return false, fmt.Errorf("worksheet hyperlink list missing")
	}

	kept := reflect.MakeSlice(list.Type(), 0, list.Len())
	removed := false
	for i := 0; i < list.Len(); i++ {
		e := list.Index(i)
		if stringField(e, "Ref") == cell {
			removed = true
			continue
		}
		kept = reflect.Append(kept, e)
	}
	if !removed {
		return false, nil
	}
	if kept.Len() == 0 {
		links.Set(reflect.Zero(links.Type()))
	} else {
		list.Set(kept)
	}
	return true, nil
}

// setCellError writes an error-typed cell (t="e"). excelize has no public
// setter for error values, so the cell element is patched directly after
// SetCellDefault materializes it: the type becomes "e", the code goes into
// V, and any inline-string node SetCellDefault produced for the non-numeric
// code is dropped (an error cell keeps its code in V).
func setCellError(f *excelize.File, sheet, cell, code string) error {
	if err := f.SetCellDefault(sheet, cell, code); err != nil {
		return err
	}
	ws, err := worksheetValue(f, sheet)
	if err != nil {
		return err
	}
	rows := ws.Elem().FieldByName("SheetData").FieldByName("Row")
	if !rows.IsValid() || rows.Kind() != reflect.Slice {
		return fmt.Errorf("worksheet sheet data missing")
	}
	for i := 0; i < rows.Len(); i++ {
		cells := rows.Index(i).FieldByName("C")
		if !cells.IsValid() || cells.Kind() != reflect.Slice {
			continue
		}
		for j := 0; j < cells.Len(); j++ {
			c := cells.Index(j)
			if stringField(c, "R") != cell {
				continue
			}
			tf := c.FieldByName("T")
			vf := c.FieldByName("V")
			if !tf.IsValid() || !tf.CanSet() || !vf.IsValid() || !vf.CanSet() {
				return fmt.Errorf("cell %s: cannot set error fields", cell)
			}
			tf.SetString("e")
			vf.SetString(code)
			if is := c.FieldByName("IS"); is.IsValid() && is.Kind() == reflect.Pointer && is.CanSet() {
				is.Set(reflect.Zero(is.Type()))
			}
			return nil
		}
	}
	return fmt.Errorf("cell %s!%s not materialized", sheet, cell)
}
