package interpreter

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/parser"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

// DefaultMaxCallDepth bounds nested user function calls.
const DefaultMaxCallDepth = 10000

// Options configures a new Interpreter. The zero value selects the standard
// natives writing to os.Stdout, a discarding logger and DefaultMaxCallDepth.
type Options struct {
	// Natives replaces the standard native set when non-nil.
	Natives map[string]runtime.NativeFunc
	// Stdout receives print output when Natives is nil.
	Stdout       io.Writer
	Logger       *slog.Logger
	MaxCallDepth int
}

// Interpreter evaluates programs against a persistent global environment.
// It is not safe for concurrent use.
type Interpreter struct {
	global       *runtime.Environment
	logger       *slog.Logger
	maxCallDepth int
	depth        int
}

// New builds an interpreter whose global environment holds true, false, null
// and the configured natives.
func New(opts Options) (*Interpreter, error) {
	natives := opts.Natives
	if natives == nil {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		natives = StandardNatives(out, time.Now)
	}
	global, err := runtime.NewGlobalEnvironment(natives)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	depth := opts.MaxCallDepth
	if depth <= 0 {
		depth = DefaultMaxCallDepth
	}
	return &Interpreter{
		global:       global,
		logger:       logger,
		maxCallDepth: depth,
	}, nil
}

// GlobalEnvironment returns the interpreter's root environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// EvaluateProgram runs program in the global environment and returns the value
// of its last statement.
func (i *Interpreter) EvaluateProgram(program *ast.Program) (runtime.Value, error) {
	return i.Evaluate(program, i.global)
}

// EvaluateSource parses src and evaluates it in the global environment, so
// bindings persist from one call to the next.
func (i *Interpreter) EvaluateSource(src string) (runtime.Value, error) {
	program, err := parser.ProduceAST(src)
	if err != nil {
		return nil, err
	}
	return i.EvaluateProgram(program)
}

// Evaluate evaluates node in env. Failures come back as *RuntimeError carrying
// the position of the innermost node that failed.
func (i *Interpreter) Evaluate(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluate(node, env)
	if err != nil {
		return nil, wrapRuntimeError(err, node)
	}
	return val, nil
}

func (i *Interpreter) evaluate(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return i.evaluateProgram(n, env)
	case ast.Statement:
		return i.evaluateStatement(n, env)
	case nil:
		return nil, &InternalError{Message: "cannot evaluate a nil node"}
	default:
		return nil, &InternalError{Message: "unsupported node " + string(node.NodeType())}
	}
}

func (i *Interpreter) evaluateProgram(program *ast.Program, env *runtime.Environment) (runtime.Value, error) {
	var last runtime.Value = runtime.NullValue{}
	for _, stmt := range program.Body {
		val, err := i.Evaluate(stmt, env)
		if err != nil {
			return nil, err
		}
		last = val
	}
	return last, nil
}
