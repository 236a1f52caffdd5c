package parser

import (
	"strconv"

	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads every row of a sheet as a grid. Empty cells become nil and
// numeric text becomes int64 or float64. Rows keep their sheet position, so
// row i of the grid is sheet row i+1.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(rows))
	for i, row := range rows {
		cells := make(models.Row, len(row))
		for j, v := range row {
			cells[j] = parseValue(v)
		}
		grid[i] = cells
	}
	return grid, nil
}

// parseValue converts cell text to int64, float64 or string. Empty text is
// a blank cell.
func parseValue(s string) models.Cell {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
