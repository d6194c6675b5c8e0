package conform

import "encoding/json"

// Infer returns the most specific leaf descriptor matching v. It is total and
// pure; values of a kind the algebra does not model map to the "unknown"
// descriptor. Infer exists to fill the diagnostic "actual" slot of a Failure,
// not to drive validation.
func Infer(v any) Descriptor {
	switch v.(type) {
	case nil:
		return nullType{}
	case MissingValue:
		return missingType{}
	case string:
		return stringType{}
	case bool:
		return booleanType{}
	case json.Number,
		float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return numberType{}
	case []any:
		return arrayType{element: anyType{}}
	case map[string]any:
		return objectType{}
	default:
		return unknownType{}
	}
}
