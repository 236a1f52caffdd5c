package models

import "strings"

// Kind identifies a chart block type.
type Kind string

const (
	KindLine    Kind = "line"
	KindBar     Kind = "bar"
	KindScatter Kind = "scatter"
	KindPie     Kind = "pie"
	KindContour Kind = "contour"
	KindHeatmap Kind = "heatmap"
	KindSurface Kind = "surface"
	KindDot     Kind = "dot"
	KindBubble  Kind = "bubble"
)

// AllKinds lists every supported kind in a stable order.
var AllKinds = []Kind{
	KindLine, KindBar, KindScatter, KindPie, KindContour,
	KindHeatmap, KindSurface, KindDot, KindBubble,
}

// ParseKind converts a case-insensitive name into a Kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllKinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// TraceType is the trace type understood by the charting runtime.
type TraceType string

const (
	TraceScatter TraceType = "scatter"
	TraceBar     TraceType = "bar"
	TracePie     TraceType = "pie"
	TraceContour TraceType = "contour"
	TraceHeatmap TraceType = "heatmap"
	TraceSurface TraceType = "surface"
)
