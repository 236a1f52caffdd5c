package models

// Trace is one drawable data series.
type Trace struct {
	// Type is the runtime trace type.
	Type TraceType `json:"type"`
	// Name is the legend label.
	Name string `json:"name,omitempty"`
	// X holds x axis values.
	X []Cell `json:"x,omitempty"`
	// Y holds y axis values.
	Y []Cell `json:"y,omitempty"`
	// Z holds the value grid for contour, heatmap and surface traces.
	Z [][]Cell `json:"z,omitempty"`
	// Attrs holds every other attribute (mode, marker_size, labels, ...).
	Attrs Attrs `json:"-"`
}

// With returns a copy of t with patch deep-merged into its attributes.
func (t Trace) With(patch Attrs) Trace {
	out := t
	out.Attrs = DeepMerge(t.Attrs, patch)
	return out
}

// Attr returns an attribute value, nil when unset.
func (t Trace) Attr(name string) interface{} {
	return t.Attrs[name]
}

// Map returns the trace as a single attribute object. Attributes win over
// the data fields so a patch can rename a trace.
func (t Trace) Map() Attrs {
	m := Attrs{"type": string(t.Type)}
	if t.Name != "" {
		m["name"] = t.Name
	}
	if t.X != nil {
		m["x"] = t.X
	}
	if t.Y != nil {
		m["y"] = t.Y
	}
	if t.Z != nil {
		m["z"] = t.Z
	}
	for k, v := range t.Attrs {
		m[k] = v
	}
	return m
}
