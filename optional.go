package conform

import "strings"

// Optional wraps inner so the shape checker accepts its absence from an
// object. The name is the inner name followed by "?", parenthesized when the
// inner name contains a space so the suffix stays unambiguous.
//
// Optional changes nothing about value-level conformity: Check and
// CheckExhaustive delegate to inner without special-casing nil or a missing
// marker. Presence is interpreted solely by the shape checker.
func Optional(inner Descriptor) Descriptor { return optionalType{inner: inner} }

type optionalType struct{ inner Descriptor }

func (o optionalType) Name() string {
	n := o.inner.Name()
	if strings.Contains(n, " ") {
		return "(" + n + ")?"
	}
	return n + "?"
}

func (o optionalType) Check(v any) bool           { return o.inner.Check(v) }
func (o optionalType) CheckExhaustive(v any) bool { return o.inner.CheckExhaustive(v) }

// Optional is the sole override of the optionality flag in the algebra.
func (optionalType) Optional() bool { return true }
