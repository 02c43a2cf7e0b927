package lexer

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType int

const (
	EOF TokenType = iota

	// Literals
	Number
	Identifier

	// Keywords
	Let
	Const
	Fn

	// Grouping & operators
	BinaryOperator
	Equals
	Comma
	Dot
	Colon
	Semicolon
	OpenParen
	CloseParen
	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Number:
		return "number"
	case Identifier:
		return "identifier"
	case Let:
		return "'let'"
	case Const:
		return "'const'"
	case Fn:
		return "'fn'"
	case BinaryOperator:
		return "operator"
	case Equals:
		return "'='"
	case Comma:
		return "','"
	case Dot:
		return "'.'"
	case Colon:
		return "':'"
	case Semicolon:
		return "';'"
	case OpenParen:
		return "'('"
	case CloseParen:
		return "')'"
	case OpenBrace:
		return "'{'"
	case CloseBrace:
		return "'}'"
	case OpenBracket:
		return "'['"
	case CloseBracket:
		return "']'"
	default:
		return fmt.Sprintf("token_%d", int(t))
	}
}

var keywords = map[string]TokenType{
	"let":   Let,
	"const": Const,
	"fn":    Fn,
}

// LookupKeyword reports the keyword token type for ident, if it is reserved.
func LookupKeyword(ident string) (TokenType, bool) {
	tt, ok := keywords[ident]
	return tt, ok
}

// Token is a single lexical unit. Value holds the raw source text.
type Token struct {
	Type   TokenType
	Value  string
	Line   int
	Column int
}

func (t Token) String() string {
	switch t.Type {
	case Number, Identifier, BinaryOperator:
		return fmt.Sprintf("%s %q", t.Type, t.Value)
	default:
		return t.Type.String()
	}
}
