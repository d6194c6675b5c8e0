package conform

import "strings"

// ShapeDef is a declarative object shape: an ordered mapping from property
// name to either a descriptor or a nested ShapeDef. Build it once with Shape
// and the Field/Nested steps, then treat it as read-only; a definition under
// validation is never mutated and may be shared across goroutines.
//
// Property names are unique within one definition; re-registering a name
// replaces the earlier entry in place, keeping its declaration position.
// Declaration order is the checker's iteration order, which makes the "first
// failure" deterministic.
type ShapeDef struct {
	fields []shapeField
}

type shapeField struct {
	name   string
	desc   Descriptor // nil when nested is set
	nested *ShapeDef
}

// Shape creates an empty object-shape definition.
func Shape() *ShapeDef { return &ShapeDef{} }

// Field registers a property checked by a descriptor and returns the
// definition for chaining. Wrap the descriptor in Optional to allow absence.
func (d *ShapeDef) Field(name string, desc Descriptor) *ShapeDef {
	return d.register(shapeField{name: name, desc: desc})
}

// Nested registers a property checked recursively by a nested shape
// definition. A missing or non-object value fails inside the nested check; to
// make an entire nested object optional, wrap it with Optional and register
// it via Field instead.
func (d *ShapeDef) Nested(name string, nested *ShapeDef) *ShapeDef {
	return d.register(shapeField{name: name, nested: nested})
}

func (d *ShapeDef) register(f shapeField) *ShapeDef {
	for i := range d.fields {
		if d.fields[i].name == f.name {
			d.fields[i] = f
			return d
		}
	}
	d.fields = append(d.fields, f)
	return d
}

// Validate walks v against the definition depth-first in declaration order
// and returns a *Failure-backed error for the first nonconforming property,
// or nil when v conforms. Properties present in v but absent from the
// definition are ignored (open shape). Validation is fail-fast: callers
// needing every defect re-run after fixing each.
func (d *ShapeDef) Validate(v any) error {
	if f := d.walk(v); f != nil {
		return f
	}
	return nil
}

func (d *ShapeDef) walk(v any) *Failure {
	m, ok := v.(map[string]any)
	if !ok {
		return NewFailure(nil, CodeInvalidType, Object(), v)
	}
	for _, f := range d.fields {
		if f.nested != nil {
			nv, present := m[f.name]
			if !present {
				nv = Missing
			}
			if fail := f.nested.walk(nv); fail != nil {
				// Prepend, not append: the record reads root-to-leaf, and the
				// deeper frame's record must stay untouched.
				return fail.PrependPath(f.name)
			}
			continue
		}
		val, present := m[f.name]
		if !present {
			if f.desc.Optional() {
				continue
			}
			return NewFailureWithActual([]string{f.name}, CodeRequired, f.desc, Missing, missingType{})
		}
		if !f.desc.Check(val) {
			code := CodeInvalidType
			if _, isEnum := f.desc.(enumType); isEnum {
				code = CodeInvalidEnum
			}
			return NewFailure([]string{f.name}, code, f.desc, val)
		}
	}
	return nil
}

// ---- Descriptor capability ----
// A ShapeDef composes like any other descriptor: it can sit inside a Union,
// be wrapped by Optional, or be a member of another shape via Field.

// Name renders the definition structurally, e.g. "{name: string, age: number?}".
func (d *ShapeDef) Name() string {
	b := &strings.Builder{}
	b.WriteString("{")
	for i, f := range d.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.name)
		b.WriteString(": ")
		if f.nested != nil {
			b.WriteString(f.nested.Name())
		} else {
			b.WriteString(f.desc.Name())
		}
	}
	b.WriteString("}")
	return b.String()
}

// Check reports whether v validates cleanly against the definition.
func (d *ShapeDef) Check(v any) bool { return d.walk(v) == nil }

// CheckExhaustive degrades to Check: an object shape has no ambiguity concept.
func (d *ShapeDef) CheckExhaustive(v any) bool { return d.Check(v) }

// Optional reports false; wrap a ShapeDef with Optional to allow absence.
func (d *ShapeDef) Optional() bool { return false }
