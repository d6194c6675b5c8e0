// Package yaml decodes YAML input into the loosely-typed value forms the
// checker operates on (map[string]any, []any, int/float64, string, bool, nil).
package yaml

import (
	"fmt"

	y "gopkg.in/yaml.v3"
)

// DecodeBytes decodes one YAML document from b. Mapping keys are normalized
// to strings so the result is shaped like decoded JSON.
func DecodeBytes(b []byte) (any, error) {
	var v any
	if err := y.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}

// normalize rewrites map[any]any nodes (which yaml produces for non-string
// scalar keys) into map[string]any, recursively.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
