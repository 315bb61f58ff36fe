package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-weft/weft/pkg/core"
)

var dimensionRE = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(px|dp|sp|pt|in|mm)$`)

// convertScalar applies the shared scalar conventions to one decoded
// value, recursing into maps and slices.
func convertScalar(v any) any {
	switch val := v.(type) {
	case string:
		return convertString(val)
	case map[string]any:
		out := make(core.Attributes, len(val))
		for k, item := range val {
			out[k] = convertScalar(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = convertScalar(item)
		}
		return out
	default:
		return v
	}
}

// convertString recognizes the symbol and dimension spellings. A leading
// colon can be escaped by doubling it ("::literal" means the string
// ":literal").
func convertString(s string) any {
	if strings.HasPrefix(s, "::") {
		return s[1:]
	}
	if strings.HasPrefix(s, ":") && len(s) > 1 {
		return core.Symbol(s[1:])
	}
	if m := dimensionRE.FindStringSubmatch(s); m != nil {
		mag, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			if unit, ok := core.ParseUnit(m[2]); ok {
				return core.Dimension{Value: mag, Unit: unit}
			}
		}
	}
	return s
}
