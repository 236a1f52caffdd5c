package traces

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/table"
)

// pieBuilder uses the first column as labels and the second as values.
// The pie table has no header row, so whole columns are used.
type pieBuilder struct{}

func (pieBuilder) Kind() models.Kind { return models.KindPie }

func (pieBuilder) Fields() []Field {
	return []Field{
		{Name: "title"},
		{Name: "hole", Target: TargetTrace, Default: 0},
		{Name: "marker_line_color", Target: TargetTrace},
		{Name: "marker_line_width", Target: TargetTrace, Default: 1},
	}
}

func (pieBuilder) Build(b *models.Block) Result {
	cols := table.Columns(b.Grid)
	if len(cols) < 2 {
		return Result{}
	}
	return Result{Traces: []models.Trace{{
		Type: models.TracePie,
		Attrs: models.Attrs{
			"labels": []models.Cell(cols[0]),
			"values": []models.Cell(cols[1]),
		},
	}}}
}
