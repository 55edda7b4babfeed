package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", Fields{"key": "medicationCards"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "key=medicationCards") {
		t.Fatalf("expected warn line with fields, got %q", out)
	}
}

func TestLogger_JSONWithBaseFieldsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "test-app", Output: &buf}).
		With(Fields{"profile": "p1"})

	l.Error("put failed", Fields{"err": errors.New("disk full")})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["app"] != "test-app" || entry["profile"] != "p1" {
		t.Fatalf("missing base fields: %#v", entry)
	}
	if entry["err"] != "disk full" {
		t.Fatalf("expected error rendered as string, got %#v", entry["err"])
	}
	if entry["level"] != "error" {
		t.Fatalf("expected level error, got %#v", entry["level"])
	}
}

func TestNop_WritesNothing(t *testing.T) {
	l := Nop()
	// no debe paniquear ni escribir
	l.Error("x", Fields{"a": 1})
}

func TestParseLevelAndFormat(t *testing.T) {
	cases := map[string]Level{"": Info, "DEBUG": Debug, "warning": Warn, "error": Error, "off": Silent, "???": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}
