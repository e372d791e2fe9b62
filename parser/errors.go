package parser

import (
	"errors"
	"fmt"

	pc "github.com/shibukawa/parsercombinator"

	tok "github.com/jsonpath-standard/jsonpath-reference-implementation/tokenizer"
)

// Sentinel errors
var (
	ErrMissingRootSelector = errors.New("expression must start with root selector '$'")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrInvalidInteger      = errors.New("invalid integer literal")
)

// SyntaxError is the single failure kind of the parse stage. Offset is the
// byte offset into the expression where the first unmatched construct starts.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

func errInvalidIntegerf(literal string) error {
	return fmt.Errorf("%w: %q", ErrInvalidInteger, literal)
}

// invalidLiteralError aborts the surrounding combinator without
// backtracking: a union element that looks like an integer or string but
// fails to decode can never match another way.
type invalidLiteralError struct {
	Position tok.Position
	Cause    error
}

func (e *invalidLiteralError) Error() string {
	return fmt.Sprintf("invalid literal at %d:%d: %s", e.Position.Line, e.Position.Column, e.Cause)
}

func (e *invalidLiteralError) Unwrap() error {
	return pc.ErrCritical
}
