// Package figure combines built traces and resolved options into the
// figure handed to a renderer.
package figure

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/table"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/traces"
)

// titleAttrs maps block title fields to the layout attributes they set.
var titleAttrs = []struct{ field, attr string }{
	{"title", "title_text"},
	{"xaxis_title", "xaxis_title_text"},
	{"yaxis_title", "yaxis_title_text"},
}

// Assemble builds the figure. Block titles always replace preset titles.
// bundle.Trace is merged into every trace first, then the builder's
// patch. Inputs are not modified.
func Assemble(res traces.Result, bundle models.OptionBundle, fields map[string]interface{}) *models.Figure {
	layout := bundle.Layout.Clone()
	if layout == nil {
		layout = models.Attrs{}
	}
	for _, t := range titleAttrs {
		layout[t.attr] = table.Text(fields[t.field])
	}

	out := make([]models.Trace, 0, len(res.Traces))
	for _, t := range res.Traces {
		out = append(out, t.With(bundle.Trace).With(res.Patch))
	}

	config := bundle.Config.Clone()
	if config == nil {
		config = models.Attrs{}
	}

	return &models.Figure{
		Traces: out,
		Layout: layout,
		Config: config,
	}
}
