package parser

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
)

// astOptions compares trees structurally, ignoring source positions so hand
// built expectations match parsed output.
var astOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.IgnoreTypes(ast.Position{}),
}

func assertProgramsEqual(t testing.TB, expected, actual *ast.Program) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, astOptions...); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}
}

func mustParse(t testing.TB, source string) *ast.Program {
	t.Helper()
	program, err := ProduceAST(source)
	if err != nil {
		t.Fatalf("ProduceAST(%q) error: %v", source, err)
	}
	return program
}

func expectParseError(t testing.TB, source, message string) *ParseError {
	t.Helper()
	_, err := ProduceAST(source)
	if err == nil {
		t.Fatalf("ProduceAST(%q) succeeded, want parse error %q", source, message)
	}
	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("ProduceAST(%q) error = %T (%v), want *ParseError", source, err, err)
	}
	if parseErr.Message != message {
		t.Fatalf("ProduceAST(%q) message = %q, want %q", source, parseErr.Message, message)
	}
	return parseErr
}
