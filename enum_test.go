package conform_test

import (
	"testing"

	conform "github.com/conformgo/conform"
)

func TestEnum_Membership(t *testing.T) {
	e := conform.Enum("red", "green")
	if !e.Check("red") || !e.Check("green") {
		t.Fatalf("expected listed values to conform")
	}
	if e.Check("blue") || e.Check(nil) || e.Check(5) {
		t.Fatalf("expected unlisted values to fail")
	}
}

func TestEnum_DefaultAndExplicitName(t *testing.T) {
	if got := conform.Enum("a").Name(); got != "enum" {
		t.Fatalf("expected default display name %q, got %q", "enum", got)
	}
	if got := conform.EnumNamed("color", "red").Name(); got != "color" {
		t.Fatalf("expected explicit display name, got %q", got)
	}
}

func TestEnum_StrictEqualityNotDeep(t *testing.T) {
	member := map[string]any{"k": 1}
	e := conform.Enum(member)
	// Maps are uncomparable in Go; identity equality cannot hold and the
	// check must fail without panicking, same as any foreign input.
	if e.Check(map[string]any{"k": 1}) {
		t.Fatalf("expected structurally equal but distinct composite to fail")
	}
	if e.Check(member) {
		t.Fatalf("expected uncomparable member kind to fail closed")
	}
}

func TestEnum_MixedKinds(t *testing.T) {
	e := conform.Enum("1", 1)
	if !e.Check("1") || !e.Check(1) {
		t.Fatalf("expected both literal kinds to conform")
	}
	if e.Check(int64(1)) {
		t.Fatalf("expected differing dynamic type to fail strict equality")
	}
}

func TestEnum_ExhaustiveDuplicateIsAmbiguous(t *testing.T) {
	e := conform.Enum("a", "a")
	if !e.Check("a") {
		t.Fatalf("plain membership still passes with duplicates")
	}
	if e.CheckExhaustive("a") {
		t.Fatalf("expected duplicated entry to make membership ambiguous")
	}
	if !conform.Enum("a", "b").CheckExhaustive("a") {
		t.Fatalf("expected unique entry to be exhaustively valid")
	}
}

func TestEnum_ShapeFailureCarriesEnumCode(t *testing.T) {
	def := conform.Shape().Field("state", conform.EnumNamed("state", "open", "closed"))
	err := def.Validate(map[string]any{"state": "pending"})
	f, ok := conform.AsFailure(err)
	if !ok {
		t.Fatalf("expected a Failure, got %v", err)
	}
	if f.Code() != conform.CodeInvalidEnum {
		t.Fatalf("expected %s, got %s", conform.CodeInvalidEnum, f.Code())
	}
	if f.Expected().Name() != "state" {
		t.Fatalf("expected display name in diagnostics, got %q", f.Expected().Name())
	}
}

func TestEnum_EmptyNeverConforms(t *testing.T) {
	e := conform.Enum()
	if e.Check("a") || e.CheckExhaustive("a") {
		t.Fatalf("an empty enum must not silently conform")
	}
}
