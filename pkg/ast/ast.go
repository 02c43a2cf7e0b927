package ast

type NodeType string

const (
	NodeProgram             NodeType = "Program"
	NodeVarDeclaration      NodeType = "VarDeclaration"
	NodeFunctionDeclaration NodeType = "FunctionDeclaration"
	NodeAssignmentExpr      NodeType = "AssignmentExpr"
	NodeBinaryExpr          NodeType = "BinaryExpr"
	NodeCallExpr            NodeType = "CallExpr"
	NodeMemberExpr          NodeType = "MemberExpr"
	NodeIdentifier          NodeType = "Identifier"
	NodeNumericLiteral      NodeType = "NumericLiteral"
	NodeObjectLiteral       NodeType = "ObjectLiteral"
	NodeProperty            NodeType = "Property"
)

// Position is the 1-based source location of the token that starts a node.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// IsZero reports whether the position was never set (nodes built by hand).
func (p Position) IsZero() bool {
	return p == Position{}
}

type Node interface {
	NodeType() NodeType
	Pos() Position
	isNode()
}

type nodeImpl struct {
	Type     NodeType `json:"type"`
	Position Position `json:"position"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Pos() Position      { return n.Position }
func (nodeImpl) isNode()              {}

func (n *nodeImpl) setPos(pos Position) { n.Position = pos }

// SetPos annotates the node with the position of its first token.
func SetPos(node Node, pos Position) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setPos(Position) }); ok {
		setter.setPos(pos)
	}
}

// Marker interfaces.

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Expression nodes double as statements: an expression on its own line is an
// expression statement whose value is the statement's result.
type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Statements

type Program struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewProgram(body []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Body: body}
}

type VarDeclaration struct {
	nodeImpl
	statementMarker

	Constant   bool       `json:"constant"`
	Identifier string     `json:"identifier"`
	Value      Expression `json:"value,omitempty"`
}

func NewVarDeclaration(constant bool, identifier string, value Expression) *VarDeclaration {
	return &VarDeclaration{nodeImpl: newNodeImpl(NodeVarDeclaration), Constant: constant, Identifier: identifier, Value: value}
}

type FunctionDeclaration struct {
	nodeImpl
	statementMarker

	Name       string      `json:"name"`
	Parameters []string    `json:"parameters"`
	Body       []Statement `json:"body"`
}

func NewFunctionDeclaration(name string, parameters []string, body []Statement) *FunctionDeclaration {
	return &FunctionDeclaration{nodeImpl: newNodeImpl(NodeFunctionDeclaration), Name: name, Parameters: parameters, Body: body}
}

// Expressions

type AssignmentExpr struct {
	nodeImpl
	expressionMarker
	statementMarker

	Target Expression `json:"target"`
	Value  Expression `json:"value"`
}

func NewAssignmentExpr(target, value Expression) *AssignmentExpr {
	return &AssignmentExpr{nodeImpl: newNodeImpl(NodeAssignmentExpr), Target: target, Value: value}
}

type BinaryExpr struct {
	nodeImpl
	expressionMarker
	statementMarker

	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
	Operator string     `json:"operator"`
}

func NewBinaryExpr(left, right Expression, operator string) *BinaryExpr {
	return &BinaryExpr{nodeImpl: newNodeImpl(NodeBinaryExpr), Left: left, Right: right, Operator: operator}
}

type CallExpr struct {
	nodeImpl
	expressionMarker
	statementMarker

	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpr(callee Expression, args []Expression) *CallExpr {
	return &CallExpr{nodeImpl: newNodeImpl(NodeCallExpr), Callee: callee, Arguments: args}
}

// MemberExpr is `object.property` (Computed false, Property is an Identifier)
// or `object[property]` (Computed true).
type MemberExpr struct {
	nodeImpl
	expressionMarker
	statementMarker

	Object   Expression `json:"object"`
	Property Expression `json:"property"`
	Computed bool       `json:"computed"`
}

func NewMemberExpr(object, property Expression, computed bool) *MemberExpr {
	return &MemberExpr{nodeImpl: newNodeImpl(NodeMemberExpr), Object: object, Property: property, Computed: computed}
}

type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

type NumericLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value float64 `json:"value"`
}

func NewNumericLiteral(value float64) *NumericLiteral {
	return &NumericLiteral{nodeImpl: newNodeImpl(NodeNumericLiteral), Value: value}
}

type ObjectLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Properties []*Property `json:"properties"`
}

func NewObjectLiteral(properties []*Property) *ObjectLiteral {
	return &ObjectLiteral{nodeImpl: newNodeImpl(NodeObjectLiteral), Properties: properties}
}

// Property is a key inside an object literal. A nil Value marks the shorthand
// form `{ key }`, which reads the variable named key.
type Property struct {
	nodeImpl

	Key   string     `json:"key"`
	Value Expression `json:"value,omitempty"`
}

func NewProperty(key string, value Expression) *Property {
	return &Property{nodeImpl: newNodeImpl(NodeProperty), Key: key, Value: value}
}
