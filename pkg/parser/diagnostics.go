package parser

import (
	"errors"
	"fmt"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/lexer"
)

// SourceLocation is the 1-based position of the token a diagnostic points at.
type SourceLocation struct {
	Line   int
	Column int
}

// ParseError includes a message plus the offending token.
type ParseError struct {
	Message  string
	Token    lexer.Token
	Location SourceLocation
}

func (e *ParseError) Error() string {
	found := e.Token.String()
	if e.Token.Type == lexer.EOF {
		return fmt.Sprintf("%s, found %s", e.Message, found)
	}
	return fmt.Sprintf("%s, found %s at line %d, column %d", e.Message, found, e.Location.Line, e.Location.Column)
}

// AtEOF reports whether the parser ran out of input before the construct ended.
func (e *ParseError) AtEOF() bool {
	return e.Token.Type == lexer.EOF
}

func newParseError(tok lexer.Token, message string) *ParseError {
	return &ParseError{
		Message:  message,
		Token:    tok,
		Location: SourceLocation{Line: tok.Line, Column: tok.Column},
	}
}

// IsIncomplete reports whether err came from input that ended mid-construct, so
// an interactive caller can keep reading lines before reporting it.
func IsIncomplete(err error) bool {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.AtEOF()
	}
	return false
}
