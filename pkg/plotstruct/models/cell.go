// Package models defines data structures for chart figure composition.
package models

// Cell is a single grid value: string, float64, int64, bool or nil.
type Cell = interface{}

// Row is an ordered sequence of cells. Rows of one grid may differ in length.
type Row []Cell

// Grid is editor-entered tabular input, row-major.
type Grid []Row

// Column is a transposed grid column. The first element is conventionally a label.
type Column []Cell

// IsBlank reports whether a cell counts as empty.
// Only nil and the empty string are blank; 0, "0" and false are values.
func IsBlank(c Cell) bool {
	if c == nil {
		return true
	}
	s, ok := c.(string)
	return ok && s == ""
}

// AllBlank reports whether every cell of a row or column is blank.
func AllBlank(cells []Cell) bool {
	for _, c := range cells {
		if !IsBlank(c) {
			return false
		}
	}
	return true
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
