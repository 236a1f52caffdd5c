package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
)

func TestDetectTable(t *testing.T) {
	g := models.Grid{
		{},
		{nil, nil, "", nil},
		{nil, "", "x", "y"},
		{nil, "a", 1, 3},
		{nil, "b", 2, nil, ""},
	}

	area, ok := DetectTable(g, DefaultTableParams())
	if !ok {
		t.Fatal("Expected a table")
	}
	want := models.Area{R1: 3, C1: 2, R2: 5, C2: 4}
	if area != want {
		t.Errorf("DetectTable() = %+v, expected %+v", area, want)
	}
}

func TestDetectTable_Thresholds(t *testing.T) {
	tests := []struct {
		name   string
		grid   models.Grid
		params TableDetectionParams
		found  bool
	}{
		{"empty", nil, DefaultTableParams(), false},
		{"too few cells", models.Grid{{"a", "b"}}, DefaultTableParams(), false},
		{"sparse", models.Grid{{"a", nil, nil, nil}, {nil, nil, nil, nil}, {nil, nil, nil, "b"}, {nil, nil, nil, "c"}},
			TableDetectionParams{DensityMin: 0.5, MinNonemptyCells: 1}, false},
		{"low coverage", models.Grid{{"a", "b", "c"}, {}, {}, {}, {}, {}, {"z"}},
			TableDetectionParams{CoverageMin: 0.5, MinNonemptyCells: 1}, false},
		{"zero counts as data", models.Grid{{0, 0, 0}}, DefaultTableParams(), true},
	}

	for _, tt := range tests {
		_, ok := DetectTable(tt.grid, tt.params)
		if ok != tt.found {
			t.Errorf("%s: DetectTable() found = %v, expected %v", tt.name, ok, tt.found)
		}
	}
}

func TestCrop(t *testing.T) {
	g := models.Grid{
		{"a1", "b1", "c1"},
		{"a2"},
		{"a3", "b3", "c3", "d3"},
	}

	got := Crop(g, models.Area{R1: 1, C1: 2, R2: 4, C2: 3})
	want := models.Grid{
		{"b1", "c1"},
		{},
		{"b3", "c3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Crop() = %v, expected %v", got, want)
	}

	got[0][0] = "changed"
	if g[0][1] != "b1" {
		t.Error("Crop must not share rows with the source grid")
	}

	if out := Crop(g, models.Area{}); out == nil || len(out) != 0 {
		t.Errorf("Crop(empty area) = %v, expected empty grid", out)
	}
}

func TestSelectRegion(t *testing.T) {
	g := models.Grid{
		{"title"},
		{},
		{nil, "x", "y"},
		{nil, 1, 2},
	}
	params := DefaultTableParams()

	tests := []struct {
		name       string
		explicit   string
		printAreas []models.Area
		params     TableDetectionParams
		want       models.Area
		source     RegionSource
	}{
		{"explicit", "B3:C4", []models.Area{{R1: 1, C1: 1, R2: 1, C2: 1}}, params, models.Area{R1: 3, C1: 2, R2: 4, C2: 3}, RegionRange},
		{"print area", "", []models.Area{{}, {R1: 3, C1: 2, R2: 4, C2: 3}}, params, models.Area{R1: 3, C1: 2, R2: 4, C2: 3}, RegionPrintArea},
		{"detected", "", nil, params, models.Area{R1: 1, C1: 1, R2: 4, C2: 3}, RegionDetected},
		{"whole sheet", "", nil, TableDetectionParams{MinNonemptyCells: 100}, models.Area{R1: 1, C1: 1, R2: 4, C2: 3}, RegionSheet},
	}

	for _, tt := range tests {
		area, source, err := SelectRegion(g, tt.explicit, tt.printAreas, tt.params)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if area != tt.want || source != tt.source {
			t.Errorf("%s: SelectRegion() = %+v, %s; expected %+v, %s", tt.name, area, source, tt.want, tt.source)
		}
	}

	if _, _, err := SelectRegion(g, "not a range", nil, params); err == nil {
		t.Error("Expected error for malformed range")
	}
}
