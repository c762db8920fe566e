package xlcell

import "github.com/xuri/excelize/v2"

// Kind is the content kind of a cell.
type Kind int

const (
	KindBlank Kind = iota
	KindNumber
	KindText
	KindFormula
	KindBool
	KindError
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "Blank"
	case KindNumber:
		return "Number"
	case KindText:
		return "Text"
	case KindFormula:
		return "Formula"
	case KindBool:
		return "Bool"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// CellKind reports the content kind of a cell. Formula detection comes
// first, then the cell's type attribute. excelize's GetCellType cannot tell
// a blank cell from an untyped number cell (neither carries a type
// attribute), so the raw value decides as the final step.
func CellKind(f *excelize.File, sheet, cell string) (Kind, error) {
	formula, err := f.GetCellFormula(sheet, cell)
	if err != nil {
		return KindBlank, err
	}
	if formula != "" {
		return KindFormula, nil
	}

	t, err := f.GetCellType(sheet, cell)
	if err != nil {
		return KindBlank, err
	}
	switch t {
	case excelize.CellTypeBool:
		return KindBool, nil
	case excelize.CellTypeError:
		return KindError, nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return KindText, nil
	case excelize.CellTypeNumber, excelize.CellTypeDate:
		return KindNumber, nil
	case excelize.CellTypeFormula:
		return KindFormula, nil
	}

	raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return KindBlank, err
	}
	if raw == "" {
		return KindBlank, nil
	}
	return KindNumber, nil
}
