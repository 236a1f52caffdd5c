// Package traces turns extracted table columns into chart traces, one
// builder per chart kind.
//
// Builders never fail: input that is too small for a kind produces fewer
// traces or none at all, so a half-typed table still renders.
package traces

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
)

// Result is the output of a builder.
type Result struct {
	// Traces are the built series, in table order.
	Traces []models.Trace
	// Patch is merged into every trace after all option layers.
	Patch models.Attrs
}

// Builder converts a block into traces.
type Builder interface {
	// Kind returns the chart kind served by the builder.
	Kind() models.Kind
	// Fields lists the scalar block fields the kind understands.
	Fields() []Field
	// Build derives traces from the block's table input.
	Build(b *models.Block) Result
}

var registry = map[models.Kind]Builder{
	models.KindLine:    lineBuilder{},
	models.KindDot:     dotBuilder{},
	models.KindBar:     barBuilder{},
	models.KindScatter: scatterBuilder{},
	models.KindPie:     pieBuilder{},
	models.KindContour: gridBuilder{kind: models.KindContour, traceType: models.TraceContour},
	models.KindHeatmap: gridBuilder{kind: models.KindHeatmap, traceType: models.TraceHeatmap, zsmooth: true},
	models.KindSurface: gridBuilder{kind: models.KindSurface, traceType: models.TraceSurface, numeric: true},
	models.KindBubble:  bubbleBuilder{},
}

// Lookup returns the builder for a kind.
func Lookup(kind models.Kind) (Builder, bool) {
	b, ok := registry[kind]
	return b, ok
}

// Kinds returns the kinds with a registered builder in stable order.
func Kinds() []models.Kind {
	out := make([]models.Kind, 0, len(registry))
	for _, k := range models.AllKinds {
		if _, ok := registry[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
