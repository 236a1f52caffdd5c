// Package output encodes figures as JSON for a renderer.
package output

import (
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/figure"
	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Embed is the payload handed to the chart renderer.
type Embed struct {
	// Figure is the expanded figure (data, layout, config).
	Figure models.Attrs `json:"figure"`
	// IncludePlotlyJS tells the renderer how to include the charting
	// library: cdn, directory, true or false.
	IncludePlotlyJS string `json:"include_plotlyjs"`
}

// NewEmbed builds the renderer payload for a figure.
func NewEmbed(f *models.Figure, includePlotlyJS string) Embed {
	return Embed{
		Figure:          figure.Expanded(f),
		IncludePlotlyJS: includePlotlyJS,
	}
}

// ToJSON serializes v. NaN and infinite numbers are written as null.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	v = sanitize(v)
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// FigureToJSON serializes a figure in expanded form.
func FigureToJSON(f *models.Figure, pretty bool) ([]byte, error) {
	return ToJSON(figure.Expanded(f), pretty)
}

// EmbedToJSON serializes an embed payload.
func EmbedToJSON(e Embed, pretty bool) ([]byte, error) {
	return ToJSON(map[string]interface{}{
		"figure":           e.Figure,
		"include_plotlyjs": e.IncludePlotlyJS,
	}, pretty)
}

// sanitize copies nested maps and slices, replacing non-finite floats
// with nil. Other values are returned unchanged.
func sanitize(v interface{}) interface{} {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return x
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return nil
		}
		return x
	case models.Attrs:
		return sanitizeMap(x)
	case map[string]interface{}:
		return sanitizeMap(x)
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = sanitize(e)
		}
		return out
	case [][]interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = sanitize(e)
		}
		return out
	case []float64:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = sanitize(e)
		}
		return out
	case []models.Trace:
		out := make([]interface{}, len(x))
		for i, t := range x {
			out[i] = sanitize(t.Map())
		}
		return out
	case *models.Figure:
		return sanitize(x.Map())
	}
	return v
}

func sanitizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, e := range m {
		out[k] = sanitize(e)
	}
	return out
}
