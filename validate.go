package conform

import (
	"fmt"

	sourcejson "github.com/conformgo/conform/source/json"
	sourceyaml "github.com/conformgo/conform/source/yaml"
)

// ValidateJSON decodes one JSON document and validates it against def.
// A malformed document is reported as a wrapped decode error; a conforming
// decode that fails the shape check is reported as a *Failure.
func ValidateJSON(def *ShapeDef, data []byte) error {
	v, err := sourcejson.DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("conform: decode json: %w", err)
	}
	return def.Validate(v)
}

// ValidateYAML decodes one YAML document and validates it against def.
func ValidateYAML(def *ShapeDef, data []byte) error {
	v, err := sourceyaml.DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("conform: decode yaml: %w", err)
	}
	return def.Validate(v)
}
