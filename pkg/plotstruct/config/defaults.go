// Package config resolves the option bundle of a chart from global
// defaults, named presets, block field overrides and a custom JSON patch.
package config

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
)

func defaultLayout() models.Attrs {
	return models.Attrs{
		"autosize": true,
		"legend": map[string]interface{}{
			"orientation": "h",
			"y":           -0.25,
			"xanchor":     "center",
			"x":           0.5,
		},
		"font": map[string]interface{}{
			"size": 13,
		},
		"margin": map[string]interface{}{"t": 80, "b": 20, "l": 20, "r": 20},
		"hoverlabel": map[string]interface{}{
			"bgcolor": "white",
			"font": map[string]interface{}{
				"color": "black",
				"size":  13,
			},
			"bordercolor": "#eeeeee",
		},
		"plot_bgcolor": "#fefefe",
		"xaxis": map[string]interface{}{
			"gridcolor": "#eeeeee",
			"ticks":     "outside",
			"showline":  true,
			"linecolor": "#aaaaaa",
			"mirror":    true,
		},
		"yaxis": map[string]interface{}{
			"gridcolor": "#eeeeee",
			"ticks":     "outside",
			"showline":  true,
			"linecolor": "#aaaaaa",
			"mirror":    true,
			"zeroline":  false,
		},
	}
}

// DefaultBundle returns a fresh copy of the built-in option bundle.
func DefaultBundle() models.OptionBundle {
	return models.OptionBundle{
		Layout: defaultLayout(),
		Config: models.Attrs{},
		Trace:  models.Attrs{},
	}
}

var defaultContextMenu = []interface{}{
	"row_above", "row_below", "---------",
	"col_left", "col_right", "---------",
	"remove_row", "remove_col", "---------",
	"undo", "redo", "---------",
	"copy", "cut",
}

var defaultTableOptions = models.Attrs{
	"minSpareRows":     0,
	"startRows":        10,
	"startCols":        10,
	"colHeaders":       true,
	"rowHeaders":       true,
	"colWidths":        50,
	"manualColumnMove": false,
	"manualRowMove":    false,
	"contextMenu":      defaultContextMenu,
	"editor":           "text",
	"stretchH":         "all",
	"height":           240,
	"renderer":         "text",
	"autoColumnSize":   false,
}

// tableKinds maps a chart kind to the plotType the table editor uses and
// the options it changes.
var tableKinds = map[models.Kind]models.Attrs{
	models.KindLine:    {"plotType": "line"},
	models.KindBar:     {"plotType": "bar"},
	models.KindScatter: {"plotType": "scatter"},
	models.KindDot:     {"plotType": "dot"},
	models.KindContour: {"plotType": "contour"},
	models.KindHeatmap: {"plotType": "contour"},
	models.KindSurface: {"plotType": "contour"},
	models.KindPie: {
		"plotType":   "pie",
		"colHeaders": []interface{}{"Name", "Data"},
		"rowHeaders": false,
		"startCols":  2,
		"contextMenu": []interface{}{
			"row_above", "row_below", "---------",
			"remove_row", "---------",
			"undo", "redo", "---------",
			"copy", "cut",
		},
	},
	models.KindBubble: {
		"plotType":   "bubble",
		"colHeaders": []interface{}{"Label", "X", "Y", "Size"},
		"startCols":  4,
	},
}

// TableOptions returns the table editor options for a kind. overrides is
// applied on top of the built-in defaults, before the kind specific keys.
func TableOptions(kind models.Kind, overrides map[string]interface{}) models.Attrs {
	base := models.Merge(defaultTableOptions, overrides)
	return models.Merge(base, tableKinds[kind]).Clone()
}
