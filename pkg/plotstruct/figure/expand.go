package figure

import (
	"sort"

	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
)

// Expand converts underscore paths such as marker_line_width into nested
// objects {"marker": {"line": {"width": ...}}}. Names such as plot_bgcolor
// and error_y are not split. Plain keys are placed
// first; paths are then applied in sorted order, so a path wins over the
// same attribute given in object form. Nested objects are expanded too.
func Expand(attrs models.Attrs) models.Attrs {
	out := make(models.Attrs, len(attrs))
	var paths []string
	for k, v := range attrs {
		if models.IsPath(k) {
			paths = append(paths, k)
			continue
		}
		out[k] = expandValue(v)
	}
	sort.Strings(paths)

	for _, p := range paths {
		parts := models.SplitPath(p)
		node := out
		for _, part := range parts[:len(parts)-1] {
			child, ok := models.AsAttrs(node[part])
			if !ok {
				child = models.Attrs{}
			} else {
				child = models.Merge(child, nil)
			}
			node[part] = child
			node = child
		}

		leaf := parts[len(parts)-1]
		v := expandValue(attrs[p])
		if nested, ok := models.AsAttrs(v); ok {
			if existing, ok := models.AsAttrs(node[leaf]); ok {
				v = models.DeepMerge(existing, nested)
			}
		}
		node[leaf] = v
	}
	return out
}

func expandValue(v interface{}) interface{} {
	if m, ok := models.AsAttrs(v); ok {
		return Expand(m)
	}
	return v
}

// Expanded returns the figure as nested plain values with every layout
// and trace attribute expanded.
func Expanded(f *models.Figure) models.Attrs {
	data := make([]interface{}, 0, len(f.Traces))
	for _, t := range f.Traces {
		data = append(data, Expand(t.Map()))
	}
	layout := f.Layout
	if layout == nil {
		layout = models.Attrs{}
	}
	config := f.Config
	if config == nil {
		config = models.Attrs{}
	}
	return models.Attrs{
		"data":   data,
		"layout": Expand(layout),
		"config": config,
	}
}
