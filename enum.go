package conform

import "reflect"

// Enum returns a descriptor accepting exactly the listed literal values under
// strict (identity, non-deep) equality. The display name defaults to the
// literal "enum"; use EnumNamed to supply one.
func Enum(values ...any) Descriptor { return EnumNamed("enum", values...) }

// EnumNamed is Enum with an explicit display name.
func EnumNamed(name string, values ...any) Descriptor {
	return enumType{name: name, values: append([]any(nil), values...)}
}

type enumType struct {
	name   string
	values []any
}

func (e enumType) Name() string { return e.name }

func (e enumType) Check(v any) bool {
	for _, want := range e.values {
		if literalEqual(want, v) {
			return true
		}
	}
	return false
}

// CheckExhaustive scans the full value list; a duplicated accepted value makes
// membership ambiguous, so an input equal to it fails (same second-match
// algorithm as Union).
func (e enumType) CheckExhaustive(v any) bool {
	matched := false
	for _, want := range e.values {
		if literalEqual(want, v) {
			if matched {
				return false
			}
			matched = true
		}
	}
	return matched
}

func (enumType) Optional() bool { return false }

// literalEqual compares under Go's == with the dynamic-type guards needed to
// never panic: mismatched or uncomparable kinds simply do not match. Two
// distinct composites with identical contents are not equal here.
func literalEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
