package parser

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
)

// RegionSource names the rule that chose a sheet region.
type RegionSource string

const (
	RegionRange     RegionSource = "range"
	RegionPrintArea RegionSource = "print_area"
	RegionDetected  RegionSource = "detected"
	RegionSheet     RegionSource = "sheet"
)

// SelectRegion picks the cells of a sheet to chart: the explicit range when
// given, else the first print area, else a detected table, else the whole
// sheet. Only a malformed explicit range is an error.
func SelectRegion(g models.Grid, explicit string, printAreas []models.Area, params TableDetectionParams) (models.Area, RegionSource, error) {
	if explicit != "" {
		area, err := ParseRange(explicit)
		if err != nil {
			return models.Area{}, "", err
		}
		return area, RegionRange, nil
	}
	for _, a := range printAreas {
		if !a.Empty() {
			return a, RegionPrintArea, nil
		}
	}
	if area, ok := DetectTable(g, params); ok {
		return area, RegionDetected, nil
	}
	return models.Area{R1: 1, C1: 1, R2: len(g), C2: g.Width()}, RegionSheet, nil
}
