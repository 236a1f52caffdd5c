package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
)

// Text renders a cell as label text. Blank cells render as "".
func Text(c models.Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return "True"
		}
		return "False"
	}
	return fmt.Sprint(c)
}

// Float parses a cell as a number. Anything that is not numeric,
// including blanks and booleans, becomes NaN.
func Float(c models.Cell) float64 {
	switch v := c.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return math.NaN()
}

// Floats maps Float over cells.
func Floats(cells []models.Cell) []models.Cell {
	out := make([]models.Cell, len(cells))
	for i, c := range cells {
		out[i] = Float(c)
	}
	return out
}

// Max returns the largest numeric cell. ok is false when no cell is numeric.
func Max(cells []models.Cell) (max float64, ok bool) {
	for _, c := range cells {
		f := Float(c)
		if math.IsNaN(f) {
			continue
		}
		if !ok || f > max {
			max, ok = f, true
		}
	}
	return max, ok
}
