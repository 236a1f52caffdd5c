package traces

import (
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"go.uber.org/zap"
)

// Target says where a block field ends up.
type Target int

const (
	// TargetNone fields are read by the builder or assembler only.
	TargetNone Target = iota
	// TargetTrace fields become trace attributes.
	TargetTrace
	// TargetLayout fields become layout attributes.
	TargetLayout
)

// Field describes one scalar block field.
type Field struct {
	// Name is both the block field name and the attribute name.
	Name string
	// Target selects the option member the field overrides.
	Target Target
	// Default fills the field when the block does not carry it.
	Default interface{}
	// Choices restricts string values when non-empty.
	Choices []string
}

var (
	fillChoices        = []string{"none", "tozeroy", "tozerox", "tonexty", "tonextx", "toself", "tonext"}
	modeChoices        = []string{"lines", "lines+markers", "markers", "none"}
	lineShapeChoices   = []string{"linear", "spline"}
	markerSymbols      = []string{"circle", "square", "diamond", "cross", "triangle-up", "star"}
	markerFillChoices  = []string{"-open", "-dot", "-open-dot"}
	orientationChoices = []string{"v", "h"}
	barmodeChoices     = []string{"group", "stack"}
	zsmoothChoices     = []string{"fast", "best"}
	colorscaleChoices  = []string{
		"greys", "ylgnbu", "greens", "ylorrd", "bluered", "rdbu", "reds", "blues", "picnic",
		"rainbow", "portland", "jet", "hot", "blackbody", "earth", "electric", "viridis", "cividis",
	}
)

var titleFields = []Field{
	{Name: "title"},
	{Name: "xaxis_title"},
	{Name: "yaxis_title"},
}

func lineStyleFields(mode string) []Field {
	return []Field{
		{Name: "mode", Target: TargetTrace, Default: mode, Choices: modeChoices},
		{Name: "fill", Target: TargetTrace, Default: "none", Choices: fillChoices},
		{Name: "line_shape", Target: TargetTrace, Default: "linear", Choices: lineShapeChoices},
		{Name: "line_width", Target: TargetTrace, Default: 2},
		{Name: "marker_size", Target: TargetTrace, Default: 6},
	}
}

func colorscaleFields(zsmooth bool) []Field {
	fields := []Field{
		{Name: "colorscale", Target: TargetTrace, Choices: colorscaleChoices},
		{Name: "reversescale", Target: TargetTrace},
	}
	if zsmooth {
		fields = append(fields, Field{Name: "zsmooth", Target: TargetTrace, Choices: zsmoothChoices})
	}
	return fields
}

func withTitles(fields ...Field) []Field {
	out := make([]Field, 0, len(titleFields)+len(fields))
	out = append(out, titleFields...)
	return append(out, fields...)
}

// Normalize returns a copy of fields with defaults filled in for absent
// names and out-of-choice values dropped. Unknown names pass through.
func Normalize(b Builder, fields map[string]interface{}, logger *zap.Logger) map[string]interface{} {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	for _, f := range b.Fields() {
		v, ok := out[f.Name]
		if !ok {
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}
		s, isString := v.(string)
		if len(f.Choices) == 0 || !isString || s == "" {
			continue
		}
		if !contains(f.Choices, s) {
			logger.Warn("Dropping block field with unknown choice",
				zap.String("kind", string(b.Kind())),
				zap.String("field", f.Name),
				zap.String("value", s))
			delete(out, f.Name)
		}
	}
	return out
}

// Overrides selects the trace and layout fields of a block that override
// preset options. A field is skipped only when its value is "" or nil, so
// 0 and false survive.
func Overrides(b Builder, fields map[string]interface{}) models.OptionBundle {
	var bundle models.OptionBundle
	for _, f := range b.Fields() {
		if f.Target == TargetNone {
			continue
		}
		v, ok := fields[f.Name]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && s == "" {
			continue
		}
		switch f.Target {
		case TargetTrace:
			if bundle.Trace == nil {
				bundle.Trace = models.Attrs{}
			}
			bundle.Trace[f.Name] = v
		case TargetLayout:
			if bundle.Layout == nil {
				bundle.Layout = models.Attrs{}
			}
			bundle.Layout[f.Name] = v
		}
	}
	return bundle
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
