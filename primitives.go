package conform

import (
	"encoding/json"
	"strings"
)

// String returns the leaf descriptor for string values.
func String() Descriptor { return stringType{} }

// Number returns the leaf descriptor for numeric values. It accepts every Go
// numeric kind plus json.Number, so values decoded in either UseNumber or
// float64 mode conform alike.
func Number() Descriptor { return numberType{} }

// Boolean returns the leaf descriptor for bool values.
func Boolean() Descriptor { return booleanType{} }

// Null returns the leaf descriptor matching only nil.
func Null() Descriptor { return nullType{} }

// Any returns the leaf descriptor matching every value.
func Any() Descriptor { return anyType{} }

// Object returns the generic object leaf descriptor (map[string]any). The
// shape checker reports it as the expected descriptor when the input is not
// object-like at all.
func Object() Descriptor { return objectType{} }

// Array returns a descriptor for homogeneous []any values whose every element
// conforms to element. The name is the element name suffixed with "[]",
// parenthesized when the element name contains a space.
func Array(element Descriptor) Descriptor { return arrayType{element: element} }

type stringType struct{}

func (stringType) Name() string { return "string" }
func (stringType) Check(v any) bool {
	_, ok := v.(string)
	return ok
}
func (d stringType) CheckExhaustive(v any) bool { return d.Check(v) }
func (stringType) Optional() bool               { return false }

type numberType struct{}

func (numberType) Name() string { return "number" }
func (numberType) Check(v any) bool {
	switch v.(type) {
	case json.Number,
		float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
func (d numberType) CheckExhaustive(v any) bool { return d.Check(v) }
func (numberType) Optional() bool               { return false }

type booleanType struct{}

func (booleanType) Name() string { return "boolean" }
func (booleanType) Check(v any) bool {
	_, ok := v.(bool)
	return ok
}
func (d booleanType) CheckExhaustive(v any) bool { return d.Check(v) }
func (booleanType) Optional() bool               { return false }

type nullType struct{}

func (nullType) Name() string                 { return "null" }
func (nullType) Check(v any) bool             { return v == nil }
func (d nullType) CheckExhaustive(v any) bool { return d.Check(v) }
func (nullType) Optional() bool               { return false }

type anyType struct{}

func (anyType) Name() string               { return "any" }
func (anyType) Check(any) bool             { return true }
func (anyType) CheckExhaustive(v any) bool { return true }
func (anyType) Optional() bool             { return false }

type objectType struct{}

func (objectType) Name() string { return "object" }
func (objectType) Check(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}
func (d objectType) CheckExhaustive(v any) bool { return d.Check(v) }
func (objectType) Optional() bool               { return false }

type arrayType struct{ element Descriptor }

func (a arrayType) Name() string {
	n := a.element.Name()
	if strings.Contains(n, " ") {
		return "(" + n + ")[]"
	}
	return n + "[]"
}
func (a arrayType) Check(v any) bool {
	items, ok := v.([]any)
	if !ok {
		return false
	}
	for _, it := range items {
		if !a.element.Check(it) {
			return false
		}
	}
	return true
}
func (a arrayType) CheckExhaustive(v any) bool {
	items, ok := v.([]any)
	if !ok {
		return false
	}
	for _, it := range items {
		if !a.element.CheckExhaustive(it) {
			return false
		}
	}
	return true
}
func (arrayType) Optional() bool { return false }

// MissingValue marks a property that was absent from the checked object. It
// appears as the recorded value of a required-property Failure and never
// equals any real input value.
type MissingValue struct{}

func (MissingValue) String() string { return "<missing>" }

// Missing is the canonical absent-property marker.
var Missing = MissingValue{}

type missingType struct{}

func (missingType) Name() string                 { return "missing" }
func (missingType) Check(v any) bool             { _, ok := v.(MissingValue); return ok }
func (d missingType) CheckExhaustive(v any) bool { return d.Check(v) }
func (missingType) Optional() bool               { return false }

type unknownType struct{}

func (unknownType) Name() string             { return "unknown" }
func (unknownType) Check(any) bool           { return false }
func (unknownType) CheckExhaustive(any) bool { return false }
func (unknownType) Optional() bool           { return false }
