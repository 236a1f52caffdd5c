package models

// OptionBundle is one layer of chart options. A nil member means the layer
// leaves that member untouched.
type OptionBundle struct {
	// Layout holds figure layout attributes.
	Layout Attrs `json:"layout,omitempty" yaml:"layout,omitempty"`
	// Config holds runtime display options.
	Config Attrs `json:"config,omitempty" yaml:"config,omitempty"`
	// Trace holds attributes applied to every trace.
	Trace Attrs `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// Clone returns a deep copy of b.
func (b OptionBundle) Clone() OptionBundle {
	return OptionBundle{
		Layout: b.Layout.Clone(),
		Config: b.Config.Clone(),
		Trace:  b.Trace.Clone(),
	}
}

// Overlay merges each non-nil member of top onto b key by key.
func (b OptionBundle) Overlay(top OptionBundle) OptionBundle {
	out := b
	if top.Layout != nil {
		out.Layout = Merge(b.Layout, top.Layout)
	}
	if top.Config != nil {
		out.Config = Merge(b.Config, top.Config)
	}
	if top.Trace != nil {
		out.Trace = Merge(b.Trace, top.Trace)
	}
	return out
}
