package theme

import (
	"math"
	"sort"

	"gitlab.com/tinyland/lab/investigator-themes/pkg/validation"
)

// Style is a CSS object: property names mapped to values. Values are
// strings, numbers, booleans, lists of those (fallback values), or nested
// Style tables for selectors such as "&:hover".
//
// Nested tables decoded from TOML or YAML arrive as map[string]any; both
// forms are accepted everywhere a Style is.
type Style map[string]any

// Clone returns a deep copy of s. A nil Style stays nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

// MarshalYAML writes a nil Style as null so it decodes back to nil rather
// than to an empty table.
func (s Style) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}
	return map[string]any(s), nil
}

func cloneValue(v any) any {
	switch vv := v.(type) {
	case Style:
		return vv.Clone()
	case map[string]any:
		return map[string]any(Style(vv).Clone())
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), vv...)
	}
	return v
}

// validateStyle reports values that cannot appear in a CSS object.
func validateStyle(c *validation.Collector, path string, s Style) {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == "" {
			c.Add(path, "property name must not be empty")
			continue
		}
		validateStyleValue(c, validation.Field(path, k), s[k])
	}
}

func validateStyleValue(c *validation.Collector, path string, v any) {
	switch vv := v.(type) {
	case Style:
		validateStyle(c, path, vv)
	case map[string]any:
		validateStyle(c, path, Style(vv))
	case []any:
		for i, e := range vv {
			if !isScalar(e) {
				c.Add(validation.Index(path, i), "fallback values must be strings or numbers, got %T", e)
			}
		}
	case []string:
	case float64:
		if math.IsNaN(vv) || math.IsInf(vv, 0) {
			c.Add(path, "must be a finite number")
		}
	default:
		if !isScalar(v) {
			c.Add(path, "unsupported CSS value of type %T", v)
		}
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
