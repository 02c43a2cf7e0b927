package ast

// Builders for hand-written trees (tests, embedders).

func Prog(body ...Statement) *Program {
	if body == nil {
		body = []Statement{}
	}
	return NewProgram(body)
}

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Num(value float64) *NumericLiteral {
	return NewNumericLiteral(value)
}

func Bin(operator string, left, right Expression) *BinaryExpr {
	return NewBinaryExpr(left, right, operator)
}

func Assign(target, value Expression) *AssignmentExpr {
	return NewAssignmentExpr(target, value)
}

func Call(callee Expression, args ...Expression) *CallExpr {
	if args == nil {
		args = []Expression{}
	}
	return NewCallExpr(callee, args)
}

func Member(object Expression, property string) *MemberExpr {
	return NewMemberExpr(object, ID(property), false)
}

func Index(object, property Expression) *MemberExpr {
	return NewMemberExpr(object, property, true)
}

func Let(name string, value Expression) *VarDeclaration {
	return NewVarDeclaration(false, name, value)
}

func Const(name string, value Expression) *VarDeclaration {
	return NewVarDeclaration(true, name, value)
}

func Fn(name string, params []string, body ...Statement) *FunctionDeclaration {
	if params == nil {
		params = []string{}
	}
	if body == nil {
		body = []Statement{}
	}
	return NewFunctionDeclaration(name, params, body)
}

func Obj(properties ...*Property) *ObjectLiteral {
	if properties == nil {
		properties = []*Property{}
	}
	return NewObjectLiteral(properties)
}

func Prop(key string, value Expression) *Property {
	return NewProperty(key, value)
}

// Shorthand builds `{ key }`.
func Shorthand(key string) *Property {
	return NewProperty(key, nil)
}
