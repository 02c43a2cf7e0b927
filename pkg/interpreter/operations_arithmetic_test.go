package interpreter

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

func TestArithmeticMatchesHostSemantics(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	operands := []float64{0, 1, 2.5, 7, 10, 0.1, 123.456}
	ops := map[string]func(a, b float64) float64{
		"+": func(a, b float64) float64 { return a + b },
		"-": func(a, b float64) float64 { return a - b },
		"*": func(a, b float64) float64 { return a * b },
	}
	for _, a := range operands {
		for _, b := range operands {
			for op, apply := range ops {
				src := fmt.Sprintf("%s %s %s", ast.FormatNumber(a), op, ast.FormatNumber(b))
				expectNumber(t, mustEvalSource(t, interp, src), apply(a, b))
			}
		}
	}
}

func TestDivision(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	expectNumber(t, mustEvalSource(t, interp, "7 / 2"), 3.5)
	expectNumber(t, mustEvalSource(t, interp, "0 / 4"), 0)
}

func TestModuloTruncatesOperands(t *testing.T) {
	cases := []struct {
		left, right, want float64
	}{
		{7, 3, 1},
		{7.9, 3.2, 1},
		{10, 5, 0},
		{-7, 3, -1},
		{7, -3, 1},
	}
	for _, tc := range cases {
		got, err := applyBinaryOperator("%", runtime.NumberValue{Val: tc.left}, runtime.NumberValue{Val: tc.right})
		if err != nil {
			t.Fatalf("%v %% %v: %v", tc.left, tc.right, err)
		}
		expectNumber(t, got, tc.want)
	}
}

func TestDivisionAndModuloByZeroFail(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	cases := map[string]string{
		"1 / 0":   "division by zero",
		"0 / 0":   "division by zero",
		"5 % 0":   "modulo by zero",
		"5 % 0.5": "modulo by zero",
	}
	for src, msg := range cases {
		val, err := interp.EvaluateSource(src)
		var arith *ArithmeticError
		if !errors.As(err, &arith) {
			t.Fatalf("%s: expected ArithmeticError, got %v (value %#v)", src, err, val)
		}
		if arith.Message != msg {
			t.Fatalf("%s: message = %q, want %q", src, arith.Message, msg)
		}
		if val != nil {
			t.Fatalf("%s: failed evaluation returned a value", src)
		}
	}
}

func TestNonNumberOperandYieldsNull(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	for _, src := range []string{"null + 1", "1 * true", "({ a: 1 }) - 2", "print / 0", "false % 0"} {
		val, err := interp.EvaluateSource(src)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", src, err)
		}
		expectNull(t, val)
	}
}

func TestUnknownOperatorIsInternal(t *testing.T) {
	_, err := applyBinaryOperator("^", runtime.NumberValue{Val: 1}, runtime.NumberValue{Val: 2})
	var internal *InternalError
	if !errors.As(err, &internal) {
		t.Fatalf("expected InternalError, got %v", err)
	}
}

func TestInfinityIsNotAZeroDivisor(t *testing.T) {
	got, err := applyBinaryOperator("/", runtime.NumberValue{Val: 1}, runtime.NumberValue{Val: math.Inf(1)})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	expectNumber(t, got, 0)
}
