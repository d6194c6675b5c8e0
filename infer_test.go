package conform_test

import (
	"encoding/json"
	"testing"

	conform "github.com/conformgo/conform"
)

func TestInfer_LeafKinds(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{nil, "null"},
		{"x", "string"},
		{true, "boolean"},
		{float64(1.5), "number"},
		{int(3), "number"},
		{json.Number("42"), "number"},
		{[]any{"a"}, "any[]"},
		{map[string]any{"k": 1}, "object"},
		{conform.Missing, "missing"},
		{struct{}{}, "unknown"},
		{make(chan int), "unknown"},
	}
	for _, c := range cases {
		if got := conform.Infer(c.v).Name(); got != c.want {
			t.Fatalf("Infer(%#v): expected %q, got %q", c.v, c.want, got)
		}
	}
}

// Infer feeds diagnostics only; the inferred descriptor accepts the value it
// was inferred from (except for the unknown fallback, which matches nothing).
func TestInfer_InferredDescriptorAcceptsValue(t *testing.T) {
	for _, v := range []any{nil, "x", true, float64(2), []any{1}, map[string]any{}} {
		if !conform.Infer(v).Check(v) {
			t.Fatalf("expected Infer(%#v) to accept its source value", v)
		}
	}
	if conform.Infer(struct{}{}).Check(struct{}{}) {
		t.Fatalf("the unknown descriptor matches nothing")
	}
}
