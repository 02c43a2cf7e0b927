package interpreter

import (
	"math"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

// applyBinaryOperator evaluates an arithmetic operator. Any non-number operand
// makes the result null rather than an error.
func applyBinaryOperator(op string, left, right runtime.Value) (runtime.Value, error) {
	l, lok := left.(runtime.NumberValue)
	r, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return runtime.NullValue{}, nil
	}
	switch op {
	case "+":
		return runtime.NumberValue{Val: l.Val + r.Val}, nil
	case "-":
		return runtime.NumberValue{Val: l.Val - r.Val}, nil
	case "*":
		return runtime.NumberValue{Val: l.Val * r.Val}, nil
	case "/":
		if r.Val == 0 {
			return nil, &ArithmeticError{Message: "division by zero"}
		}
		return runtime.NumberValue{Val: l.Val / r.Val}, nil
	case "%":
		// Operands are truncated to integers; the result takes the dividend's sign.
		divisor := math.Trunc(r.Val)
		if divisor == 0 {
			return nil, &ArithmeticError{Message: "modulo by zero"}
		}
		return runtime.NumberValue{Val: math.Mod(math.Trunc(l.Val), divisor)}, nil
	default:
		return nil, &InternalError{Message: "unknown operator " + op}
	}
}
