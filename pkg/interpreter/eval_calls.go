package interpreter

import (
	"log/slog"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

func (i *Interpreter) evaluateCallExpression(call *ast.CallExpr, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.Evaluate(call.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		val, err := i.Evaluate(arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	return i.callFunction(callee, args, env)
}

func (i *Interpreter) callFunction(callee runtime.Value, args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	switch fn := callee.(type) {
	case runtime.NativeFunctionValue:
		i.logger.Debug("native call", slog.String("function", fn.Name), slog.Int("argument-count", len(args)))
		if fn.Impl == nil {
			return nil, &InternalError{Message: "native function " + fn.Name + " has no implementation"}
		}
		return fn.Impl(&runtime.NativeCallContext{Env: env}, args)
	case *runtime.FunctionValue:
		return i.invokeFunction(fn, args)
	default:
		return nil, &TypeError{Message: "cannot call a non-function value"}
	}
}

// invokeFunction binds parameters positionally in a fresh scope under the
// closure. Missing arguments are null; extra arguments are dropped.
func (i *Interpreter) invokeFunction(fn *runtime.FunctionValue, args []runtime.Value) (runtime.Value, error) {
	if i.depth >= i.maxCallDepth {
		return nil, &CallDepthError{Limit: i.maxCallDepth}
	}
	i.depth++
	defer func() { i.depth-- }()

	i.logger.Debug("push call frame",
		slog.String("function", fn.Name),
		slog.Int("argument-count", len(args)),
		slog.Int("depth", i.depth))

	scope := runtime.NewEnvironment(fn.Closure)
	for idx, param := range fn.Parameters {
		var value runtime.Value = runtime.NullValue{}
		if idx < len(args) {
			value = args[idx]
		}
		if _, err := scope.Declare(param, value, false); err != nil {
			return nil, err
		}
	}

	var result runtime.Value = runtime.NullValue{}
	for _, stmt := range fn.Body {
		val, err := i.Evaluate(stmt, scope)
		if err != nil {
			return nil, err
		}
		result = val
	}

	i.logger.Debug("pop call frame",
		slog.String("function", fn.Name),
		slog.Int("depth", i.depth))
	return result, nil
}
