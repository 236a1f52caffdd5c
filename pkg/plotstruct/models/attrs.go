package models

import (
	"github.com/tiendc/go-deepcopy"
)

// Attrs maps chart attribute names to values. Keys are either flat
// underscore paths (marker_line_width) or nested objects (marker: {...}).
type Attrs map[string]interface{}

// Clone returns a deep copy of a. A nil map stays nil.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	var out Attrs
	if err := deepcopy.Copy(&out, a); err != nil {
		return cloneAttrs(a)
	}
	return out
}

// cloneAttrs copies objects and slices all the way down. Other values are
// shared.
func cloneAttrs(a Attrs) Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch x := v.(type) {
	case Attrs:
		return cloneAttrs(x)
	case map[string]interface{}:
		return map[string]interface{}(cloneAttrs(x))
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), x...)
	}
	return v
}

// Merge returns base overlaid with overlay key by key. Nested objects are
// replaced, not merged. An overlay key replaces the same attribute in base
// in either notation: marker replaces marker_size, and marker_size
// replaces the size of a marker object. Neither argument is modified.
func Merge(base, overlay Attrs) Attrs {
	out := make(Attrs, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		shadow(out, k, v, false)
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// DeepMerge returns base overlaid with overlay, recursing into objects
// present on both sides. Each overlay leaf replaces the same attribute in
// base in either notation. Neither argument is modified.
func DeepMerge(base, overlay Attrs) Attrs {
	out := make(Attrs, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		shadow(out, k, v, true)
	}
	for k, v := range overlay {
		nested, ok := AsAttrs(v)
		if !ok {
			out[k] = v
			continue
		}
		if existing, ok := AsAttrs(out[k]); ok {
			out[k] = DeepMerge(existing, nested)
		} else {
			out[k] = DeepMerge(nil, nested)
		}
	}
	return out
}

// AsAttrs reports whether v is an attribute object and returns it.
func AsAttrs(v interface{}) (Attrs, bool) {
	switch m := v.(type) {
	case Attrs:
		return m, true
	case map[string]interface{}:
		return Attrs(m), true
	}
	return nil, false
}
