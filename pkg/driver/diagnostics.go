package driver

import (
	"errors"
	"fmt"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/interpreter"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/lexer"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/parser"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

// Diagnostic is a classified, user-facing view of an error. Line and Column
// are zero when the position is unknown.
type Diagnostic struct {
	Category string
	Message  string
	Line     int
	Column   int
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", d.Category, d.Line, d.Column, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Category, d.Message)
}

// Describe renders err as a one-line diagnostic.
func Describe(err error) string {
	return Diagnose(err).String()
}

// Diagnose classifies err by the most specific error kind it wraps.
func Diagnose(err error) Diagnostic {
	if err == nil {
		return Diagnostic{Category: "error", Message: "<nil>"}
	}
	var d Diagnostic

	var rtErr *interpreter.RuntimeError
	if errors.As(err, &rtErr) {
		d.Line, d.Column = rtErr.Position.Line, rtErr.Position.Column
		err = rtErr.Err
	}

	var (
		lexErr   *lexer.LexError
		parseErr *parser.ParseError
		nameErr  *runtime.NameError
		constErr *runtime.ConstError
		typeErr  *interpreter.TypeError
		arithErr *interpreter.ArithmeticError
		internal *interpreter.InternalError
		depthErr *interpreter.CallDepthError
	)
	switch {
	case errors.As(err, &lexErr):
		d.Category = "lex error"
		d.Message = fmt.Sprintf("unrecognized character %q", lexErr.Char)
		d.Line, d.Column = lexErr.Line, lexErr.Column
	case errors.As(err, &parseErr):
		d.Category = "parse error"
		d.Message = fmt.Sprintf("%s, found %s", parseErr.Message, parseErr.Token)
		if !parseErr.AtEOF() {
			d.Line, d.Column = parseErr.Location.Line, parseErr.Location.Column
		}
	case errors.As(err, &nameErr):
		d.Category, d.Message = "name error", nameErr.Error()
	case errors.As(err, &constErr):
		d.Category, d.Message = "const error", constErr.Error()
	case errors.As(err, &typeErr):
		d.Category, d.Message = "type error", typeErr.Error()
	case errors.As(err, &arithErr):
		d.Category, d.Message = "arithmetic error", arithErr.Error()
	case errors.As(err, &depthErr):
		d.Category, d.Message = "call depth error", depthErr.Error()
	case errors.As(err, &internal):
		d.Category, d.Message = "internal error", internal.Error()
	default:
		d.Category, d.Message = "error", err.Error()
	}
	return d
}
