// Package parser turns a path-expression string into an ast.PathExpression.
//
// The grammar is expressed with parser combinators over tokenizer tokens.
// Parsing is all-or-nothing: any input that is not fully consumed fails with
// a SyntaxError, and evaluation-stage code never sees a partial expression.
package parser

import (
	"errors"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/jsonpath-standard/jsonpath-reference-implementation/ast"
	tok "github.com/jsonpath-standard/jsonpath-reference-implementation/tokenizer"
)

// Parse parses a path expression and returns its selector sequence. The
// returned expression always starts with ast.RootSelector. On failure the
// returned error is a *SyntaxError.
func Parse(input string) (*ast.PathExpression, error) {
	tokens, err := tok.New(input).AllTokens()
	if err != nil {
		var scanErr *tok.ScanError
		if errors.As(err, &scanErr) {
			return nil, &SyntaxError{Offset: scanErr.Position.Offset, Message: scanErr.Err.Error()}
		}

		return nil, &SyntaxError{Offset: 0, Message: err.Error()}
	}

	entityTokens := tokenToEntity(tokens)
	pctx := pc.NewParseContext[Entity]()

	pos := skipSpaces(entityTokens, 0)
	if pos >= len(entityTokens) || entityTokens[pos].Val.Original.Type != tok.ROOT {
		return nil, &SyntaxError{Offset: offsetAt(input, entityTokens, pos), Message: ErrMissingRootSelector.Error()}
	}

	selectors := []ast.Selector{ast.RootSelector{}}
	pos++

	for {
		pos = skipSpaces(entityTokens, pos)
		if pos >= len(entityTokens) {
			break
		}

		consumed, parsed, err := matcher(pctx, entityTokens[pos:])
		if err != nil {
			return nil, syntaxErrorFrom(input, entityTokens, pos, err)
		}

		selectors = append(selectors, parsed[0].Val.Selector)
		pos += consumed
	}

	return &ast.PathExpression{Selectors: selectors}, nil
}

func skipSpaces(tokens []pc.Token[Entity], pos int) int {
	for pos < len(tokens) && tokens[pos].Val.Original.Type == tok.WHITESPACE {
		pos++
	}

	return pos
}

// offsetAt is the byte offset of the token at pos, or the end of input when
// the expression ended too early.
func offsetAt(input string, tokens []pc.Token[Entity], pos int) int {
	if pos < len(tokens) {
		return tokens[pos].Val.Original.Position.Offset
	}

	return len(input)
}

func syntaxErrorFrom(input string, tokens []pc.Token[Entity], pos int, err error) *SyntaxError {
	var literalErr *invalidLiteralError
	if errors.As(err, &literalErr) {
		return &SyntaxError{Offset: literalErr.Position.Offset, Message: literalErr.Cause.Error()}
	}

	return &SyntaxError{Offset: offsetAt(input, tokens, pos), Message: ErrUnexpectedToken.Error()}
}
