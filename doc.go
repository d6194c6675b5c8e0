package conform

// Package conform checks loosely-typed runtime values (parsed JSON, YAML,
// anything arriving as `any`) against declaratively composed type descriptors
// and reports exactly where and why a value does not conform.
//
// It provides:
//
// - A small descriptor algebra: leaf descriptors (String/Number/Boolean/...),
//   Union, Optional, Enum, and recursive object shapes (ShapeDef)
// - Two conformity predicates per descriptor: Check ("at least one acceptable
//   interpretation") and CheckExhaustive ("exactly one unambiguous interpretation")
// - A stable error model via Failure (property path, expected/actual
//   descriptor, offending value, code, message)
// - Decode-then-check entrypoints for JSON and YAML byte input
//
// Design policy:
// - Keep the public API in the root package; put input decoding under source/
//   and message dictionaries under i18n/.
// - Descriptors and shape definitions are built once, then read-only; they may
//   be shared across any number of concurrent Validate calls.
// - Check/CheckExhaustive never panic; foreign input kinds simply fail.
//
// Typical usage:
//
//	def := conform.Shape().
//		Field("name", conform.String()).
//		Field("age", conform.Optional(conform.Number()))
//	if err := def.Validate(value); err != nil {
//		f, _ := conform.AsFailure(err)
//		log.Println(f.DottedPath(), f.Expected().Name())
//	}
