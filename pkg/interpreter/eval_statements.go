package interpreter

import (
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case ast.Expression:
		return i.evaluateExpression(n, env)
	case *ast.VarDeclaration:
		return i.evaluateVarDeclaration(n, env)
	case *ast.FunctionDeclaration:
		return i.evaluateFunctionDeclaration(n, env)
	default:
		return nil, &InternalError{Message: "unsupported statement " + string(node.NodeType())}
	}
}

func (i *Interpreter) evaluateVarDeclaration(decl *ast.VarDeclaration, env *runtime.Environment) (runtime.Value, error) {
	var value runtime.Value = runtime.NullValue{}
	if decl.Value != nil {
		val, err := i.Evaluate(decl.Value, env)
		if err != nil {
			return nil, err
		}
		value = val
	}
	return env.Declare(decl.Identifier, value, decl.Constant)
}

// Functions are bound as constants and close over the declaring environment.
func (i *Interpreter) evaluateFunctionDeclaration(decl *ast.FunctionDeclaration, env *runtime.Environment) (runtime.Value, error) {
	fn := &runtime.FunctionValue{
		Name:       decl.Name,
		Parameters: decl.Parameters,
		Body:       decl.Body,
		Closure:    env,
	}
	return env.Declare(decl.Name, fn, true)
}
