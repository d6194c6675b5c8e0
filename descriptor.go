package conform

// Descriptor is the capability every composable type descriptor implements.
// The variant set is closed: leaf descriptors (primitives.go), Union,
// Optional, Enum, and ShapeDef. Nothing outside the shared contract is
// required of a variant, so external leaf implementations compose freely.
type Descriptor interface {
	// Name returns a stable, human-readable name derived deterministically
	// from the descriptor's structure. Pure and idempotent.
	Name() string

	// Check reports whether v matches this descriptor under "at least one of
	// the allowed shapes/values" semantics. It never panics; input of a
	// foreign kind simply fails.
	Check(v any) bool

	// CheckExhaustive reports whether v matches under exactly one unambiguous
	// interpretation. Meaningful for Union and Enum; every other variant
	// degrades to Check.
	CheckExhaustive(v any) bool

	// Optional reports whether a property holding this descriptor may be
	// absent from a checked object. Only the Optional wrapper returns true.
	// Presence is interpreted solely by the shape checker; Check itself never
	// consults this flag because a bare descriptor has no notion of property
	// presence, only of value correctness.
	Optional() bool
}
