package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders node as canonical source text. Parsing the output yields a
// tree equal to node apart from positions.
func Print(node Node) string {
	var p printer
	p.node(node)
	return p.b.String()
}

// FormatNumber renders a numeric literal in the shortest form that parses back
// to the same value.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type printer struct {
	b      strings.Builder
	indent int
}

func (p *printer) line() {
	p.b.WriteByte('\n')
	p.b.WriteString(strings.Repeat("  ", p.indent))
}

func (p *printer) node(node Node) {
	switch n := node.(type) {
	case *Program:
		for i, stmt := range n.Body {
			if i > 0 {
				p.b.WriteByte('\n')
			}
			p.statement(stmt)
		}
	case Statement:
		p.statement(n)
	case *Property:
		p.property(n)
	case nil:
	default:
		panic(fmt.Sprintf("ast: cannot print %T", node))
	}
}

func (p *printer) statement(stmt Statement) {
	switch s := stmt.(type) {
	case *VarDeclaration:
		if s.Constant {
			p.b.WriteString("const ")
		} else {
			p.b.WriteString("let ")
		}
		p.b.WriteString(s.Identifier)
		if s.Value != nil {
			p.b.WriteString(" = ")
			p.expr(s.Value)
		}
		p.b.WriteByte(';')
	case *FunctionDeclaration:
		p.b.WriteString("fn ")
		p.b.WriteString(s.Name)
		p.b.WriteByte('(')
		p.b.WriteString(strings.Join(s.Parameters, ", "))
		p.b.WriteString(") {")
		p.indent++
		for _, inner := range s.Body {
			p.line()
			p.statement(inner)
		}
		p.indent--
		if len(s.Body) > 0 {
			p.line()
		}
		p.b.WriteByte('}')
	case Expression:
		p.expr(s)
		p.b.WriteByte(';')
	default:
		panic(fmt.Sprintf("ast: cannot print statement %T", stmt))
	}
}

func (p *printer) expr(expr Expression) {
	switch e := expr.(type) {
	case *NumericLiteral:
		p.b.WriteString(FormatNumber(e.Value))
	case *Identifier:
		p.b.WriteString(e.Name)
	case *BinaryExpr:
		p.b.WriteByte('(')
		p.operand(e.Left)
		p.b.WriteByte(' ')
		p.b.WriteString(e.Operator)
		p.b.WriteByte(' ')
		p.operand(e.Right)
		p.b.WriteByte(')')
	case *AssignmentExpr:
		p.operand(e.Target)
		p.b.WriteString(" = ")
		p.expr(e.Value)
	case *CallExpr:
		p.operand(e.Callee)
		p.b.WriteByte('(')
		for i, arg := range e.Arguments {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.expr(arg)
		}
		p.b.WriteByte(')')
	case *MemberExpr:
		p.operand(e.Object)
		if e.Computed {
			p.b.WriteByte('[')
			p.expr(e.Property)
			p.b.WriteByte(']')
		} else {
			p.b.WriteByte('.')
			p.expr(e.Property)
		}
	case *ObjectLiteral:
		if len(e.Properties) == 0 {
			p.b.WriteString("{}")
			return
		}
		p.b.WriteString("{ ")
		for i, prop := range e.Properties {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.property(prop)
		}
		p.b.WriteString(" }")
	default:
		panic(fmt.Sprintf("ast: cannot print expression %T", expr))
	}
}

// operand prints expressions that only parse at the lowest precedence levels
// inside parentheses so they can sit in operand, callee, or object position.
func (p *printer) operand(expr Expression) {
	switch expr.(type) {
	case *AssignmentExpr, *ObjectLiteral:
		p.b.WriteByte('(')
		p.expr(expr)
		p.b.WriteByte(')')
	default:
		p.expr(expr)
	}
}

func (p *printer) property(prop *Property) {
	p.b.WriteString(prop.Key)
	if prop.Value != nil {
		p.b.WriteString(": ")
		p.expr(prop.Value)
	}
}
