package models

// BubbleTable is one named sub-table of a bubble chart.
type BubbleTable struct {
	// GroupName names the trace built from this table.
	GroupName string `json:"group_name"`
	// Grid holds rows of label, x, y and size.
	Grid Grid `json:"plot_data"`
}

// Block is the value of one chart block as saved by the editor.
type Block struct {
	// Kind selects the trace builder.
	Kind Kind `json:"kind"`
	// Fields holds scalar block fields (title, mode, marker_size, ...).
	Fields map[string]interface{} `json:"fields,omitempty"`
	// Grid is the table input for every kind except bubble.
	Grid Grid `json:"plot_data,omitempty"`
	// Tables are the bubble sub-tables.
	Tables []BubbleTable `json:"plot_tables,omitempty"`
	// Preset names the layout preset to apply.
	Preset string `json:"layout,omitempty"`
	// Custom is a free-form JSON patch {"layout": {...}, "trace": {...}}.
	Custom string `json:"custom,omitempty"`
}

// Field returns a block field value, nil when unset.
func (b *Block) Field(name string) interface{} {
	if b == nil || b.Fields == nil {
		return nil
	}
	return b.Fields[name]
}

// StringField returns a block field as a string, "" when unset or not a string.
func (b *Block) StringField(name string) string {
	s, _ := b.Field(name).(string)
	return s
}
