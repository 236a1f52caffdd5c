package traces

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/table"
)

// scatterBuilder reads columns in (X, Y) pairs. A trailing unpaired column
// is ignored.
type scatterBuilder struct{}

func (scatterBuilder) Kind() models.Kind { return models.KindScatter }

func (scatterBuilder) Fields() []Field {
	fields := lineStyleFields("markers")
	fields = append(fields,
		Field{Name: "marker_symbol", Target: TargetTrace, Choices: markerSymbols},
		Field{Name: "marker_fill", Choices: markerFillChoices},
	)
	return withTitles(fields...)
}

func (scatterBuilder) Build(b *models.Block) Result {
	cols := table.Columns(b.Grid)
	out := make([]models.Trace, 0, len(cols)/2)
	for i := 0; i+1 < len(cols); i += 2 {
		xCol, yCol := cols[i], cols[i+1]
		out = append(out, models.Trace{
			Type: models.TraceScatter,
			Name: table.Text(table.Head(xCol)),
			X:    table.Tail(xCol),
			Y:    table.Tail(yCol),
		})
	}

	res := Result{Traces: out}
	symbol, fill := b.StringField("marker_symbol"), b.StringField("marker_fill")
	if symbol != "" && fill != "" {
		res.Patch = models.Attrs{"marker_symbol": symbol + fill}
	}
	return res
}
