package models

// Palette is a named ordered list of colours.
type Palette struct {
	// Name is the lookup key.
	Name string `json:"name"`
	// Colors holds colour strings in order.
	Colors []string `json:"colors"`
}

// Values returns a copy of the colour list.
func (p Palette) Values() []string {
	out := make([]string, len(p.Colors))
	copy(out, p.Colors)
	return out
}
