// Package xlcell provides small helpers for manipulating cells in an
// excelize workbook: copying a cell's value, style, comment and hyperlink
// onto another cell, clearing a cell back to a blank unformatted state, and
// merging a rectangular range so that the first non-blank cell's content
// survives in the upper-left position.
//
// Every operation mutates the *excelize.File in place, synchronously, and
// returns once the workbook reflects the change. The package takes no locks;
// callers sharing a file across goroutines must serialize access themselves.
//
// excelize exposes no public API for removing a hyperlink from a worksheet,
// so that one operation goes through a narrow reflection shim pinned to the
// excelize v2.10 worksheet layout (see worksheet.go). Nothing else touches
// library internals.
package xlcell
