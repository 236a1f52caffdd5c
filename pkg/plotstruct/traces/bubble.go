package traces

import (
	"fmt"
	"math"

	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/table"
)

const (
	defaultMarkerSizemin = 10
	defaultMaxMarkerSize = 100
)

// bubbleBuilder builds one marker trace per named sub-table. Rows are
// label, x, y and size.
type bubbleBuilder struct{}

func (bubbleBuilder) Kind() models.Kind { return models.KindBubble }

func (bubbleBuilder) Fields() []Field {
	return withTitles(
		Field{Name: "zaxis_title"},
		Field{Name: "marker_sizemin", Default: defaultMarkerSizemin},
		Field{Name: "max_marker_size", Default: defaultMaxMarkerSize},
	)
}

func (bubbleBuilder) Build(b *models.Block) Result {
	xTitle := table.Text(b.Field("xaxis_title"))
	yTitle := table.Text(b.Field("yaxis_title"))
	zTitle := table.Text(b.Field("zaxis_title"))
	sizemin := b.Field("marker_sizemin")

	out := make([]models.Trace, 0, len(b.Tables))
	var largest float64
	found := false

	for _, tbl := range b.Tables {
		rows := table.Rows(tbl.Grid)
		cols := table.Columns(rows)
		if len(cols) < 4 {
			continue
		}
		size := []models.Cell(cols[3])

		hover := make([]models.Cell, len(rows))
		for i, row := range rows {
			r := table.Pad(row, 4)
			hover[i] = fmt.Sprintf("<b>%s (%s)</b><br>%s: %s<br>%s: %s<br>%s: %s<extra></extra>",
				table.Text(r[0]), tbl.GroupName,
				xTitle, table.Text(r[1]),
				yTitle, table.Text(r[2]),
				zTitle, table.Text(r[3]))
		}

		attrs := models.Attrs{
			"mode":          "markers",
			"marker_size":   size,
			"hovertemplate": hover,
		}
		if sizemin != nil {
			attrs["marker_sizemin"] = sizemin
		}
		out = append(out, models.Trace{
			Type:  models.TraceScatter,
			Name:  tbl.GroupName,
			X:     []models.Cell(cols[1]),
			Y:     []models.Cell(cols[2]),
			Attrs: attrs,
		})

		if m, ok := table.Max(size); ok && (!found || m > largest) {
			largest, found = m, true
		}
	}

	if len(out) == 0 {
		return Result{}
	}

	// Marker area scaling is chart-wide: the reference size comes from the
	// largest bubble of every table.
	patch := models.Attrs{
		"marker_sizemode":   "area",
		"marker_line_width": 2,
	}
	if found {
		maxMarker := table.Float(b.Field("max_marker_size"))
		if math.IsNaN(maxMarker) || maxMarker <= 0 {
			maxMarker = defaultMaxMarkerSize
		}
		patch["marker_sizeref"] = 2 * largest / (maxMarker * maxMarker)
	}
	return Result{Traces: out, Patch: patch}
}
