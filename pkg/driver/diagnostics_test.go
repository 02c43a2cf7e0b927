package driver

import (
	"bytes"
	"errors"
	"testing"
)

func TestDescribe(t *testing.T) {
	session, err := NewSession(DefaultConfig(), &bytes.Buffer{}, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	cases := []struct {
		source string
		want   string
	}{
		{"let a = 1 # 2;", `lex error at 1:11: unrecognized character '#'`},
		{"let x = 5", "parse error: expected ';' after variable declaration, found end of input"},
		{"5 = x", "parse error at 1:3: invalid assignment target, found '='"},
		{"missing", "name error at 1:1: undefined variable 'missing'"},
		{"const k = 1; k = 2", "const error at 1:14: cannot reassign constant 'k'"},
		{"null()", "type error at 1:1: cannot call a non-function value"},
		{"1 / 0", "arithmetic error at 1:1: division by zero"},
		{"let d = 1;\n  d % 0", "arithmetic error at 2:3: modulo by zero"},
	}
	for _, tc := range cases {
		_, err := session.Run(tc.source)
		if err == nil {
			t.Fatalf("%q: expected error", tc.source)
		}
		if got := Describe(err); got != tc.want {
			t.Fatalf("%q: Describe = %q, want %q", tc.source, got, tc.want)
		}
	}
}

func TestDiagnoseFallbacks(t *testing.T) {
	if got := Describe(errors.New("disk full")); got != "error: disk full" {
		t.Fatalf("Describe = %q", got)
	}
	if got := Diagnose(nil).Category; got != "error" {
		t.Fatalf("nil category = %q", got)
	}
}
