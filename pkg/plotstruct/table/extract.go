// Package table normalizes editor grids into rows and columns.
//
// Every function tolerates ragged and empty input: short rows are treated
// as padded with blanks, and an empty grid yields an empty, non-nil result.
package table

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
)

// Rows returns the grid without rows whose every cell is blank.
func Rows(g models.Grid) models.Grid {
	out := make(models.Grid, 0, len(g))
	for _, row := range g {
		if models.AllBlank(row) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Columns transposes the grid and drops columns whose every cell is blank.
// Ragged rows are padded with nil to the longest row first.
func Columns(g models.Grid) []models.Column {
	width := g.Width()
	out := make([]models.Column, 0, width)
	for c := 0; c < width; c++ {
		col := make(models.Column, len(g))
		for r, row := range g {
			if c < len(row) {
				col[r] = row[c]
			}
		}
		if models.AllBlank(col) {
			continue
		}
		out = append(out, col)
	}
	return out
}

// Transpose turns columns back into a rectangular grid.
func Transpose(cols []models.Column) models.Grid {
	height := 0
	for _, col := range cols {
		if len(col) > height {
			height = len(col)
		}
	}
	out := make(models.Grid, height)
	for r := range out {
		row := make(models.Row, len(cols))
		for c, col := range cols {
			if r < len(col) {
				row[c] = col[r]
			}
		}
		out[r] = row
	}
	return out
}

// RStrip removes trailing blank cells. Interior blanks are kept.
func RStrip(cells []models.Cell) []models.Cell {
	end := len(cells)
	for end > 0 && models.IsBlank(cells[end-1]) {
		end--
	}
	return cells[:end]
}

// Pad returns cells extended with nil up to length n.
func Pad(cells []models.Cell, n int) []models.Cell {
	if len(cells) >= n {
		return cells
	}
	out := make([]models.Cell, n)
	copy(out, cells)
	return out
}

// Tail returns every cell after the first, or an empty slice.
func Tail(cells []models.Cell) []models.Cell {
	if len(cells) == 0 {
		return []models.Cell{}
	}
	return cells[1:]
}

// Head returns the first cell, or nil for an empty slice.
func Head(cells []models.Cell) models.Cell {
	if len(cells) == 0 {
		return nil
	}
	return cells[0]
}
