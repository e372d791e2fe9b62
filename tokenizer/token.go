package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string literal")
)

// TokenType represents the type of a path-expression token
type TokenType int

const (
	EOF TokenType = iota
	WHITESPACE    // a run of ASCII spaces
	ROOT          // $
	DOT           // .
	DOT_DOT       // ..
	STAR          // *
	BRACKET_OPEN  // [
	BRACKET_CLOSE // ]
	COMMA         // ,
	COLON         // :
	NAME          // unquoted child name or integer literal
	STRING        // quoted string literal, quotes included, escapes not decoded
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case ROOT:
		return "ROOT"
	case DOT:
		return "DOT"
	case DOT_DOT:
		return "DOT_DOT"
	case STAR:
		return "STAR"
	case BRACKET_OPEN:
		return "BRACKET_OPEN"
	case BRACKET_CLOSE:
		return "BRACKET_CLOSE"
	case COMMA:
		return "COMMA"
	case COLON:
		return "COLON"
	case NAME:
		return "NAME"
	case STRING:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// Position locates a token within the input expression. Offset is a byte
// offset; Column counts runes from 1.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a single lexical token of a path expression
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}

// ScanError is a tokenization failure with the position it occurred at.
type ScanError struct {
	Err      error
	Position Position
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Position.Offset)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
