package models

import "strings"

// leafNames are attribute names that contain an underscore but are single
// path segments.
var leafNames = map[string]bool{
	"plot_bgcolor":  true,
	"paper_bgcolor": true,
	"error_x":       true,
	"error_y":       true,
	"error_z":       true,
}

// SplitPath splits an attribute key such as marker_line_width into its
// path segments. Leaf names like error_y stay one segment, so
// error_y_color is [error_y color].
func SplitPath(key string) []string {
	parts := strings.Split(key, "_")
	out := make([]string, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		if i+1 < len(parts) && leafNames[parts[i]+"_"+parts[i+1]] {
			out = append(out, parts[i]+"_"+parts[i+1])
			i++
			continue
		}
		out = append(out, parts[i])
	}
	return out
}

// IsPath reports whether key names a nested attribute.
func IsPath(key string) bool {
	return len(SplitPath(key)) > 1
}

// shadow deletes from m every entry that a write of v at key replaces,
// whether m holds it as a flat path or inside an object. Objects are
// copied before they change. With deep set an object value writes only
// its leaves.
func shadow(m Attrs, key string, v interface{}, deep bool) {
	for _, p := range writtenPaths(SplitPath(key), v, deep) {
		drop(m, p)
	}
}

func writtenPaths(prefix []string, v interface{}, deep bool) [][]string {
	nested, ok := AsAttrs(v)
	if !deep || !ok {
		return [][]string{prefix}
	}
	var out [][]string
	for k, sub := range nested {
		p := append(append([]string{}, prefix...), SplitPath(k)...)
		out = append(out, writtenPaths(p, sub, true)...)
	}
	return out
}

// drop removes path and everything below it from m.
func drop(m Attrs, path []string) {
	for k, v := range m {
		kp := SplitPath(k)
		switch {
		case hasPrefix(kp, path):
			delete(m, k)
		case hasPrefix(path, kp):
			if nested, ok := AsAttrs(v); ok {
				cp := Merge(nested, nil)
				drop(cp, path[len(kp):])
				m[k] = cp
			}
		}
	}
}

func hasPrefix(s, prefix []string) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
