package interpreter

import (
	"errors"
	"fmt"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
)

// TypeError reports an operation applied to a value of the wrong kind.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string { return e.Message }

// ArithmeticError reports division or modulo by zero.
type ArithmeticError struct {
	Message string
}

func (e *ArithmeticError) Error() string { return e.Message }

// InternalError signals a malformed tree or an unknown node: an interpreter
// defect rather than a fault in the evaluated program.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return e.Message }

// CallDepthError reports nested calls beyond the configured limit.
type CallDepthError struct {
	Limit int
}

func (e *CallDepthError) Error() string {
	return fmt.Sprintf("maximum call depth of %d exceeded", e.Limit)
}

// RuntimeError attaches the failing node's source position to an evaluation
// error. Position is zero for trees built without positions.
type RuntimeError struct {
	Err      error
	Position ast.Position
}

func (e *RuntimeError) Error() string {
	if e.Position.IsZero() {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at line %d, column %d", e.Err.Error(), e.Position.Line, e.Position.Column)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

func wrapRuntimeError(err error, node ast.Node) error {
	var existing *RuntimeError
	if errors.As(err, &existing) {
		return err
	}
	var pos ast.Position
	if node != nil {
		pos = node.Pos()
	}
	return &RuntimeError{Err: err, Position: pos}
}
