package interpreter

import (
	"fmt"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumericLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.Identifier:
		return env.Lookup(n.Name)
	case *ast.BinaryExpr:
		return i.evaluateBinaryExpression(n, env)
	case *ast.AssignmentExpr:
		return i.evaluateAssignment(n, env)
	case *ast.ObjectLiteral:
		return i.evaluateObjectLiteral(n, env)
	case *ast.MemberExpr:
		return i.evaluateMemberExpression(n, env)
	case *ast.CallExpr:
		return i.evaluateCallExpression(n, env)
	default:
		return nil, &InternalError{Message: "unsupported expression " + string(node.NodeType())}
	}
}

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpr, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.Evaluate(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.Evaluate(expr.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinaryOperator(expr.Operator, left, right)
}

func (i *Interpreter) evaluateAssignment(expr *ast.AssignmentExpr, env *runtime.Environment) (runtime.Value, error) {
	target, ok := expr.Target.(*ast.Identifier)
	if !ok {
		return nil, &InternalError{Message: "invalid assignment target"}
	}
	value, err := i.Evaluate(expr.Value, env)
	if err != nil {
		return nil, err
	}
	return env.Assign(target.Name, value)
}

// A shorthand property `{ x }` reads the variable of the same name.
func (i *Interpreter) evaluateObjectLiteral(lit *ast.ObjectLiteral, env *runtime.Environment) (runtime.Value, error) {
	obj := runtime.NewObjectValue()
	for _, prop := range lit.Properties {
		var (
			value runtime.Value
			err   error
		)
		if prop.Value == nil {
			value, err = env.Lookup(prop.Key)
			if err != nil {
				return nil, wrapRuntimeError(err, prop)
			}
		} else {
			value, err = i.Evaluate(prop.Value, env)
			if err != nil {
				return nil, err
			}
		}
		obj.Set(prop.Key, value)
	}
	return obj, nil
}

func (i *Interpreter) evaluateMemberExpression(expr *ast.MemberExpr, env *runtime.Environment) (runtime.Value, error) {
	object, err := i.Evaluate(expr.Object, env)
	if err != nil {
		return nil, err
	}
	key, err := i.memberKey(expr, env)
	if err != nil {
		return nil, err
	}
	obj, ok := object.(*runtime.ObjectValue)
	if !ok {
		return nil, &TypeError{Message: fmt.Sprintf("cannot read property '%s' of %s", key, object.Kind())}
	}
	if val, ok := obj.Get(key); ok {
		return val, nil
	}
	return runtime.NullValue{}, nil
}

// memberKey yields the property name of o.k, or the formatted number of o[k].
func (i *Interpreter) memberKey(expr *ast.MemberExpr, env *runtime.Environment) (string, error) {
	if !expr.Computed {
		id, ok := expr.Property.(*ast.Identifier)
		if !ok {
			return "", &InternalError{Message: "member property must be an identifier"}
		}
		return id.Name, nil
	}
	prop, err := i.Evaluate(expr.Property, env)
	if err != nil {
		return "", err
	}
	num, ok := prop.(runtime.NumberValue)
	if !ok {
		return "", &TypeError{Message: fmt.Sprintf("computed property key must be a number, got %s", prop.Kind())}
	}
	return ast.FormatNumber(num.Val), nil
}
