package conform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conformgo/conform/i18n"
)

// Failure codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeInvalidEnum = "invalid_enum"
)

// Failure is the structured report of a single nonconformity: where it
// happened (a root-to-leaf property path), what was expected, and what was
// actually there. A Failure is immutable once constructed; recursion frames
// add path context via PrependPath, which always returns a fresh record, so a
// caller holding a Failure from a deeper frame never sees it change.
type Failure struct {
	path     []string
	code     string
	expected Descriptor
	actual   Descriptor
	value    any
}

// NewFailure builds a Failure whose actual descriptor is inferred from value.
// Use NewFailureWithActual when the actual descriptor is already known to
// avoid redundant inference.
func NewFailure(path []string, code string, expected Descriptor, value any) *Failure {
	return NewFailureWithActual(path, code, expected, value, Infer(value))
}

// NewFailureWithActual builds a Failure with an explicit actual descriptor.
func NewFailureWithActual(path []string, code string, expected Descriptor, value any, actual Descriptor) *Failure {
	return &Failure{
		path:     append([]string(nil), path...),
		code:     code,
		expected: expected,
		actual:   actual,
		value:    value,
	}
}

// Path returns a copy of the property path from the checked root to the point
// of failure.
func (f *Failure) Path() []string { return append([]string(nil), f.path...) }

// Code returns the machine-readable failure code.
func (f *Failure) Code() string { return f.code }

// Expected returns the descriptor the value was checked against.
func (f *Failure) Expected() Descriptor { return f.expected }

// Actual returns the descriptor describing the offending value.
func (f *Failure) Actual() Descriptor { return f.actual }

// Value returns the offending raw value (Missing when the property was absent).
func (f *Failure) Value() any { return f.value }

// PrependPath returns a new Failure whose path is segments followed by the
// receiver's path, all other fields preserved. The receiver is not modified.
func (f *Failure) PrependPath(segments ...string) *Failure {
	combined := make([]string, 0, len(segments)+len(f.path))
	combined = append(combined, segments...)
	combined = append(combined, f.path...)
	return &Failure{path: combined, code: f.code, expected: f.expected, actual: f.actual, value: f.value}
}

// DottedPath renders the path as a root-prefixed, dot-separated chain,
// for example "root.items.price". The bare root renders as "root".
func (f *Failure) DottedPath() string {
	if len(f.path) == 0 {
		return "root"
	}
	return "root." + strings.Join(f.path, ".")
}

// Pointer renders the path as a JSON Pointer, for example "/items/price".
// Segments are escaped per RFC 6901 ('~' -> '~0', '/' -> '~1').
func (f *Failure) Pointer() string {
	if len(f.path) == 0 {
		return "/"
	}
	esc := make([]string, len(f.path))
	for i, p := range f.path {
		esc[i] = strings.ReplaceAll(strings.ReplaceAll(p, "~", "~0"), "/", "~1")
	}
	return "/" + strings.Join(esc, "/")
}

// Message returns a localized human message for the failure code.
func (f *Failure) Message() string {
	return i18n.T(f.code, map[string]string{
		"expected": f.expected.Name(),
		"actual":   f.actual.Name(),
	})
}

// Error summarizes the failure, e.g. "invalid_type at root.a.b: expected string, got number".
func (f *Failure) Error() string {
	return fmt.Sprintf("%s at %s: expected %s, got %s", f.code, f.DottedPath(), f.expected.Name(), f.actual.Name())
}

// FailureSnapshot is a read-only, serialization-friendly view of a Failure.
type FailureSnapshot struct {
	Path       []string `json:"path"`
	DottedPath string   `json:"dottedPath"`
	Code       string   `json:"code"`
	Expected   string   `json:"expected"`
	Actual     string   `json:"actual"`
	Value      any      `json:"value,omitempty"`
}

// Snapshot captures the failure for logging or wire transport. The missing
// marker is recorded as its "<missing>" rendering.
func (f *Failure) Snapshot() FailureSnapshot {
	v := f.value
	if _, ok := v.(MissingValue); ok {
		v = Missing.String()
	}
	return FailureSnapshot{
		Path:       f.Path(),
		DottedPath: f.DottedPath(),
		Code:       f.code,
		Expected:   f.expected.Name(),
		Actual:     f.actual.Name(),
		Value:      v,
	}
}

// AsFailure extracts a *Failure from an error using errors.As internally.
func AsFailure(err error) (*Failure, bool) {
	if err == nil {
		return nil, false
	}
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
