package parser

import (
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/lexer"
)

// Parser is a recursive-descent parser over a token slice with one token of
// lookahead. A Parser may be reused; each ProduceAST call starts fresh.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// New returns a parser ready for ProduceAST.
func New() *Parser {
	return &Parser{}
}

// ProduceAST parses source into a Program using a fresh parser.
func ProduceAST(source string) (*ast.Program, error) {
	return New().ProduceAST(source)
}

// ProduceAST tokenizes source and parses every statement up to end of input.
// The first lexical or syntax error aborts the parse.
func (p *Parser) ProduceAST(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	p.current = 0

	program := ast.NewProgram([]ast.Statement{})
	ast.SetPos(program, ast.Position{Line: 1, Column: 1})
	for !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, stmt)
	}
	return program, nil
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) checkOperator(ops ...string) bool {
	if !p.check(lexer.BinaryOperator) {
		return false
	}
	value := p.peek().Value
	for _, op := range ops {
		if value == op {
			return true
		}
	}
	return false
}

func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(tt lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return lexer.Token{}, newParseError(p.peek(), message)
}

func positionOf(tok lexer.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}
