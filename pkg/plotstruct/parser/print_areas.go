package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print areas of a workbook keyed by sheet.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Area {
	result := make(map[string][]models.Area)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		for _, ref := range strings.Split(dn.RefersTo, ",") {
			sheet, area, err := parseSheetRange(ref)
			if err != nil || sheet == "" {
				continue
			}
			result[sheet] = append(result[sheet], area)
		}
	}
	return result
}

// parseSheetRange splits 'Sheet 1'!$A$1:$D$10 into its sheet and area.
func parseSheetRange(ref string) (string, models.Area, error) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", models.Area{}, fmt.Errorf("missing sheet in %q", ref)
	}
	sheet := ref[:idx]
	if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	area, err := ParseRange(ref[idx+1:])
	return sheet, area, err
}

// ParseRange parses an A1 style range such as "B2:D10" or "$A$1". A single
// cell is a one-cell area. Corners may be given in any order.
func ParseRange(s string) (models.Area, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "$", "")
	if s == "" {
		return models.Area{}, fmt.Errorf("empty range")
	}

	from, to, found := strings.Cut(s, ":")
	if !found {
		to = from
	}
	c1, r1, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", s, err)
	}

	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	return models.Area{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

// FormatRange renders an area in A1 notation.
func FormatRange(a models.Area) string {
	from, err := excelize.CoordinatesToCellName(a.C1, a.R1)
	if err != nil {
		return ""
	}
	to, err := excelize.CoordinatesToCellName(a.C2, a.R2)
	if err != nil {
		return ""
	}
	return from + ":" + to
}
