package parser

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
)

// TableDetectionParams holds thresholds for table detection.
type TableDetectionParams struct {
	// DensityMin is the minimum share of non-empty cells in the bounding box.
	DensityMin float64
	// CoverageMin is the minimum share of bounding box rows holding data.
	CoverageMin float64
	// MinNonemptyCells is the minimum number of non-empty cells.
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// DetectTable returns the bounding box of the non-blank cells of g when it
// passes the thresholds in params.
func DetectTable(g models.Grid, params TableDetectionParams) (models.Area, bool) {
	area, ok := dataBounds(g)
	if !ok {
		return models.Area{}, false
	}

	cells, rows := 0, 0
	for r := area.R1; r <= area.R2; r++ {
		n := 0
		row := g[r-1]
		for c := area.C1; c <= area.C2 && c <= len(row); c++ {
			if !models.IsBlank(row[c-1]) {
				n++
			}
		}
		cells += n
		if n > 0 {
			rows++
		}
	}

	if cells < params.MinNonemptyCells {
		return models.Area{}, false
	}
	total := (area.R2 - area.R1 + 1) * (area.C2 - area.C1 + 1)
	if float64(cells)/float64(total) < params.DensityMin {
		return models.Area{}, false
	}
	if float64(rows)/float64(area.R2-area.R1+1) < params.CoverageMin {
		return models.Area{}, false
	}
	return area, true
}

// dataBounds finds the 1-based bounding box of non-blank cells.
func dataBounds(g models.Grid) (models.Area, bool) {
	var a models.Area
	found := false
	for i, row := range g {
		for j, cell := range row {
			if models.IsBlank(cell) {
				continue
			}
			r, c := i+1, j+1
			if !found {
				a = models.Area{R1: r, C1: c, R2: r, C2: c}
				found = true
				continue
			}
			a.R1, a.R2 = min(a.R1, r), max(a.R2, r)
			a.C1, a.C2 = min(a.C1, c), max(a.C2, c)
		}
	}
	return a, found
}

// Crop returns the cells of g inside area. Rows shorter than the area stay
// short; table extraction pads them later.
func Crop(g models.Grid, area models.Area) models.Grid {
	if area.Empty() {
		return models.Grid{}
	}
	out := make(models.Grid, 0, area.R2-area.R1+1)
	for r := area.R1; r <= area.R2 && r <= len(g); r++ {
		row := g[r-1]
		if area.C1 > len(row) {
			out = append(out, models.Row{})
			continue
		}
		end := min(area.C2, len(row))
		out = append(out, append(models.Row{}, row[area.C1-1:end]...))
	}
	return out
}
