package parser

import (
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.peek().Type {
	case lexer.Let, lexer.Const:
		return p.parseVarDeclaration()
	case lexer.Fn:
		return p.parseFunctionDeclaration()
	default:
		return p.parseExpressionStatement()
	}
}

// let|const IDENT [= expr] ;
func (p *Parser) parseVarDeclaration() (ast.Statement, error) {
	keyword := p.advance()
	constant := keyword.Type == lexer.Const
	name, err := p.consume(lexer.Identifier, "expected variable name after 'let' or 'const'")
	if err != nil {
		return nil, err
	}
	var value ast.Expression
	if p.match(lexer.Equals) {
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Semicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	decl := ast.NewVarDeclaration(constant, name.Value, value)
	ast.SetPos(decl, positionOf(keyword))
	return decl, nil
}

// fn IDENT ( [IDENT {, IDENT}] ) { stmt* }
func (p *Parser) parseFunctionDeclaration() (ast.Statement, error) {
	keyword := p.advance()
	name, err := p.consume(lexer.Identifier, "expected function name after 'fn'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.OpenParen, "expected '(' after function name"); err != nil {
		return nil, err
	}
	params := []string{}
	if !p.check(lexer.CloseParen) {
		for {
			param, err := p.consume(lexer.Identifier, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Value)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.CloseParen, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.OpenBrace, "expected '{' before function body"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	decl := ast.NewFunctionDeclaration(name.Value, params, body)
	ast.SetPos(decl, positionOf(keyword))
	return decl, nil
}

// parseBlock collects statements up to the closing brace, which it consumes.
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	statements := []ast.Statement{}
	for !p.check(lexer.CloseBrace) && !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.CloseBrace, "expected '}' after function body"); err != nil {
		return nil, err
	}
	return statements, nil
}

// An expression statement may be closed by an optional ';'.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.match(lexer.Semicolon)
	return expr, nil
}
