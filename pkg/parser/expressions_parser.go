package parser

import (
	"fmt"
	"strconv"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/lexer"
)

// Precedence, lowest first:
//
//	assignment  (right associative)
//	object      { key: value, ... }
//	additive    + -
//	multiplicative * / %
//	call/member f(x) o.k o[k]
//	primary     number, identifier, ( expr )

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expression, error) {
	start := p.peek()
	left, err := p.parseObject()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.Equals) {
		return left, nil
	}
	equals := p.advance()
	if _, ok := left.(*ast.Identifier); !ok {
		return nil, newParseError(equals, "invalid assignment target")
	}
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	assign := ast.NewAssignmentExpr(left, value)
	ast.SetPos(assign, positionOf(start))
	return assign, nil
}

func (p *Parser) parseObject() (ast.Expression, error) {
	if !p.check(lexer.OpenBrace) {
		return p.parseAdditive()
	}
	open := p.advance()
	properties := []*ast.Property{}
	for !p.isAtEnd() && !p.check(lexer.CloseBrace) {
		keyTok := p.peek()
		if keyTok.Type != lexer.Identifier && keyTok.Type != lexer.Number {
			return nil, newParseError(keyTok, "expected property key in object literal")
		}
		p.advance()
		key := keyTok.Value
		if keyTok.Type == lexer.Number {
			num, err := parseNumber(keyTok)
			if err != nil {
				return nil, err
			}
			key = ast.FormatNumber(num)
		}

		var prop *ast.Property
		switch {
		case keyTok.Type == lexer.Identifier && p.check(lexer.Comma):
			p.advance()
			prop = ast.NewProperty(key, nil)
		case keyTok.Type == lexer.Identifier && p.check(lexer.CloseBrace):
			prop = ast.NewProperty(key, nil)
		default:
			if _, err := p.consume(lexer.Colon, "expected ':' after property key"); err != nil {
				return nil, err
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			prop = ast.NewProperty(key, value)
			if !p.check(lexer.CloseBrace) {
				if _, err := p.consume(lexer.Comma, "expected ',' or '}' after property value"); err != nil {
					return nil, err
				}
			}
		}
		ast.SetPos(prop, positionOf(keyTok))
		properties = append(properties, prop)
	}
	if _, err := p.consume(lexer.CloseBrace, "expected '}' to close object literal"); err != nil {
		return nil, err
	}
	obj := ast.NewObjectLiteral(properties)
	ast.SetPos(obj, positionOf(open))
	return obj, nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	start := p.peek()
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.checkOperator("+", "-") {
		operator := p.advance().Value
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		bin := ast.NewBinaryExpr(left, right, operator)
		ast.SetPos(bin, positionOf(start))
		left = bin
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	start := p.peek()
	left, err := p.parseCallMember()
	if err != nil {
		return nil, err
	}
	for p.checkOperator("*", "/", "%") {
		operator := p.advance().Value
		right, err := p.parseCallMember()
		if err != nil {
			return nil, err
		}
		bin := ast.NewBinaryExpr(left, right, operator)
		ast.SetPos(bin, positionOf(start))
		left = bin
	}
	return left, nil
}

// parseCallMember handles any chain of calls and member accesses after a
// primary expression, e.g. `make()(1).field[0]`.
func (p *Parser) parseCallMember() (ast.Expression, error) {
	start := p.peek()
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(lexer.OpenParen):
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			call := ast.NewCallExpr(expr, args)
			ast.SetPos(call, positionOf(start))
			expr = call
		case p.match(lexer.Dot):
			nameTok, err := p.consume(lexer.Identifier, "expected property name after '.'")
			if err != nil {
				return nil, err
			}
			property := ast.NewIdentifier(nameTok.Value)
			ast.SetPos(property, positionOf(nameTok))
			member := ast.NewMemberExpr(expr, property, false)
			ast.SetPos(member, positionOf(start))
			expr = member
		case p.match(lexer.OpenBracket):
			property, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.CloseBracket, "expected ']' after computed property"); err != nil {
				return nil, err
			}
			member := ast.NewMemberExpr(expr, property, true)
			ast.SetPos(member, positionOf(start))
			expr = member
		default:
			return expr, nil
		}
	}
}

// parseArguments reads a comma separated list; the '(' is already consumed.
func (p *Parser) parseArguments() ([]ast.Expression, error) {
	args := []ast.Expression{}
	if p.match(lexer.CloseParen) {
		return args, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(lexer.Comma) {
			break
		}
	}
	if _, err := p.consume(lexer.CloseParen, "expected ')' after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.Number:
		p.advance()
		value, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}
		lit := ast.NewNumericLiteral(value)
		ast.SetPos(lit, positionOf(tok))
		return lit, nil
	case lexer.Identifier:
		p.advance()
		id := ast.NewIdentifier(tok.Value)
		ast.SetPos(id, positionOf(tok))
		return id, nil
	case lexer.OpenParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.CloseParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, newParseError(tok, "expected expression")
	}
}

func parseNumber(tok lexer.Token) (float64, error) {
	value, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return 0, newParseError(tok, fmt.Sprintf("invalid number literal %q", tok.Value))
	}
	return value, nil
}
