package traces

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/table"
)

// sharedAxis splits columns into the shared first column and the series
// columns. ok is false when there are fewer than two columns.
func sharedAxis(g models.Grid) (shared []models.Cell, series []models.Column, ok bool) {
	cols := table.Columns(g)
	if len(cols) < 2 {
		return nil, nil, false
	}
	return table.Tail(cols[0]), cols[1:], true
}

// lineBuilder plots every column against the first one.
type lineBuilder struct{}

func (lineBuilder) Kind() models.Kind { return models.KindLine }

func (lineBuilder) Fields() []Field { return withTitles(lineStyleFields("lines")...) }

func (lineBuilder) Build(b *models.Block) Result {
	x, series, ok := sharedAxis(b.Grid)
	if !ok {
		return Result{}
	}
	out := make([]models.Trace, 0, len(series))
	for _, col := range series {
		out = append(out, models.Trace{
			Type: models.TraceScatter,
			Name: table.Text(table.Head(col)),
			X:    x,
			Y:    table.Tail(col),
		})
	}
	return Result{Traces: out}
}

// dotBuilder is a line plot on its side: the first column is the shared y
// axis and points are drawn without lines.
type dotBuilder struct{}

func (dotBuilder) Kind() models.Kind { return models.KindDot }

func (dotBuilder) Fields() []Field {
	return withTitles(Field{Name: "marker_size", Target: TargetTrace, Default: 12})
}

func (dotBuilder) Build(b *models.Block) Result {
	y, series, ok := sharedAxis(b.Grid)
	if !ok {
		return Result{}
	}
	out := make([]models.Trace, 0, len(series))
	for _, col := range series {
		out = append(out, models.Trace{
			Type:  models.TraceScatter,
			Name:  table.Text(table.Head(col)),
			X:     table.Tail(col),
			Y:     y,
			Attrs: models.Attrs{"mode": "markers"},
		})
	}
	return Result{Traces: out}
}

// barBuilder draws one bar series per column. Horizontal bars use the
// same extracted data with x and y swapped.
type barBuilder struct{}

func (barBuilder) Kind() models.Kind { return models.KindBar }

func (barBuilder) Fields() []Field {
	return withTitles(
		Field{Name: "orientation", Target: TargetTrace, Default: "v", Choices: orientationChoices},
		Field{Name: "marker_line_color", Target: TargetTrace},
		Field{Name: "marker_line_width", Target: TargetTrace, Default: 1},
		Field{Name: "barmode", Target: TargetLayout, Default: "group", Choices: barmodeChoices},
		Field{Name: "bargroupgap", Target: TargetLayout, Default: 0.1},
	)
}

func (barBuilder) Build(b *models.Block) Result {
	xVals, series, ok := sharedAxis(b.Grid)
	if !ok {
		return Result{}
	}
	horizontal := b.StringField("orientation") == "h"
	out := make([]models.Trace, 0, len(series))
	for _, col := range series {
		x, y := xVals, table.Tail(col)
		if horizontal {
			x, y = y, x
		}
		out = append(out, models.Trace{
			Type: models.TraceBar,
			Name: table.Text(table.Head(col)),
			X:    x,
			Y:    y,
		})
	}
	return Result{Traces: out}
}
