package lexer

import "fmt"

// EOFValue is the literal text carried by the trailing EOF token.
const EOFValue = "EndOfFile"

// LexError reports a character that no lexical rule accepts.
type LexError struct {
	Char   rune
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unrecognized character %q at line %d, column %d", e.Char, e.Line, e.Column)
}

type scanner struct {
	src    []rune
	pos    int
	line   int
	column int
	tokens []Token
}

// Tokenize converts source text into tokens, always ending with a single EOF token.
func Tokenize(source string) ([]Token, error) {
	s := &scanner{src: []rune(source), line: 1, column: 1}
	for !s.atEnd() {
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Value: EOFValue, Line: s.line, Column: s.column})
	return s.tokens, nil
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peekAt(offset int) rune {
	idx := s.pos + offset
	if idx >= len(s.src) {
		return 0
	}
	return s.src[idx]
}

func (s *scanner) advance() rune {
	ch := s.src[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

func (s *scanner) emit(tt TokenType, value string, line, column int) {
	s.tokens = append(s.tokens, Token{Type: tt, Value: value, Line: line, Column: column})
}

func (s *scanner) scanToken() error {
	line, column := s.line, s.column
	ch := s.peekAt(0)

	if tt, ok := singleCharTokens[ch]; ok {
		s.advance()
		s.emit(tt, string(ch), line, column)
		return nil
	}

	switch {
	case isSkippable(ch):
		s.advance()
	case isDigit(ch):
		s.emit(Number, s.scanNumber(), line, column)
	case isIdentStart(ch):
		ident := s.scanIdentifier()
		if tt, ok := LookupKeyword(ident); ok {
			s.emit(tt, ident, line, column)
		} else {
			s.emit(Identifier, ident, line, column)
		}
	default:
		return &LexError{Char: ch, Line: line, Column: column}
	}
	return nil
}

var singleCharTokens = map[rune]TokenType{
	'(': OpenParen,
	')': CloseParen,
	'{': OpenBrace,
	'}': CloseBrace,
	'[': OpenBracket,
	']': CloseBracket,
	'+': BinaryOperator,
	'-': BinaryOperator,
	'*': BinaryOperator,
	'/': BinaryOperator,
	'%': BinaryOperator,
	'=': Equals,
	';': Semicolon,
	':': Colon,
	',': Comma,
	'.': Dot,
}

// scanNumber consumes digits with an optional fractional part. A '.' only
// belongs to the number when a digit follows it; otherwise it is left for Dot.
func (s *scanner) scanNumber() string {
	start := s.pos
	for isDigit(s.peekAt(0)) {
		s.advance()
	}
	if s.peekAt(0) == '.' && isDigit(s.peekAt(1)) {
		s.advance()
		for isDigit(s.peekAt(0)) {
			s.advance()
		}
	}
	return string(s.src[start:s.pos])
}

func (s *scanner) scanIdentifier() string {
	start := s.pos
	for isIdentPart(s.peekAt(0)) {
		s.advance()
	}
	return string(s.src[start:s.pos])
}

func isSkippable(ch rune) bool {
	return ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
