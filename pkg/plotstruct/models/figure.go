package models

// Figure is the assembled chart handed to a renderer.
type Figure struct {
	// Traces is the list of data series.
	Traces []Trace `json:"data"`
	// Layout holds figure layout attributes.
	Layout Attrs `json:"layout"`
	// Config holds runtime display options.
	Config Attrs `json:"config"`
}

// Map returns the figure as plain nested values ready for encoding.
func (f *Figure) Map() Attrs {
	data := make([]interface{}, 0, len(f.Traces))
	for _, t := range f.Traces {
		data = append(data, t.Map())
	}
	layout := f.Layout
	if layout == nil {
		layout = Attrs{}
	}
	config := f.Config
	if config == nil {
		config = Attrs{}
	}
	return Attrs{
		"data":   data,
		"layout": layout,
		"config": config,
	}
}
