package interpreter

import (
	"bytes"
	"testing"
	"time"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

var fixedNow = time.UnixMilli(1700000000123)

func newTestInterpreter(t testing.TB) (*Interpreter, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	interp, err := New(Options{Natives: StandardNatives(out, func() time.Time { return fixedNow })})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return interp, out
}

func mustEvalSource(t testing.TB, interp *Interpreter, src string) runtime.Value {
	t.Helper()
	val, err := interp.EvaluateSource(src)
	if err != nil {
		t.Fatalf("EvaluateSource(%q) error: %v", src, err)
	}
	return val
}

func expectNumber(t testing.TB, val runtime.Value, want float64) {
	t.Helper()
	num, ok := val.(runtime.NumberValue)
	if !ok {
		t.Fatalf("expected number %v, got %#v", want, val)
	}
	if num.Val != want {
		t.Fatalf("expected %v, got %v", want, num.Val)
	}
}

func expectNull(t testing.TB, val runtime.Value) {
	t.Helper()
	if _, ok := val.(runtime.NullValue); !ok {
		t.Fatalf("expected null, got %#v", val)
	}
}
