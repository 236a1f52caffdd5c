package traces

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/table"
)

// gridBuilder serves contour, heatmap and surface plots. The first row
// holds x values, the first column y values and the rest is the z grid.
type gridBuilder struct {
	kind      models.Kind
	traceType models.TraceType
	// numeric coerces every z cell to float64, NaN when unparseable.
	numeric bool
	zsmooth bool
}

func (gb gridBuilder) Kind() models.Kind { return gb.kind }

func (gb gridBuilder) Fields() []Field { return withTitles(colorscaleFields(gb.zsmooth)...) }

func (gb gridBuilder) Build(b *models.Block) Result {
	if len(b.Grid) == 0 {
		return Result{}
	}
	x, y, z := extractXYZ(b.Grid)
	if len(z) == 0 {
		return Result{}
	}
	if gb.numeric {
		for i, row := range z {
			z[i] = table.Floats(row)
		}
	}

	t := models.Trace{Type: gb.traceType, Z: z}
	if len(x) > 0 && len(y) > 0 {
		t.X, t.Y = x, y
	}
	return Result{Traces: []models.Trace{t}}
}

// extractXYZ reads a coordinate grid. Only trailing blanks are removed;
// interior gaps stay in place. Rows with no values are skipped.
func extractXYZ(g models.Grid) (x, y []models.Cell, z [][]models.Cell) {
	for i, row := range g {
		values := table.RStrip(table.Tail(row))
		if i == 0 {
			x = append([]models.Cell{}, values...)
			continue
		}
		if len(values) == 0 {
			continue
		}
		y = append(y, table.Head(row))
		z = append(z, append([]models.Cell{}, values...))
	}
	return x, table.RStrip(y), z
}
