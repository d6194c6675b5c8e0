package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", nil); msg == "required" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", nil); msg == "required property missing" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodePassesThrough(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo for unknown code, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "X:" + code }

func TestTranslator_Replaceable(t *testing.T) {
	SetTranslator(upperTranslator{})
	if msg := T("invalid_type", nil); msg != "X:invalid_type" {
		t.Fatalf("expected custom translator output, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("invalid_type", nil); msg != "invalid type" {
		t.Fatalf("expected builtin translator restored, got %q", msg)
	}
}
