// Package jsonpath is a reference implementation of JSONPath-style path
// expressions: parse an expression once, then apply it to any number of
// in-memory JSON documents.
//
//	path, err := jsonpath.Parse("$.store.book[0,-1]['title']")
//	if err != nil { ... }
//	titles := path.Find(document)
//
// Parsing is the only operation that can fail. Evaluation silently yields
// no matches for type mismatches and out-of-range access, so Find returns
// a possibly empty slice and no error.
package jsonpath

import (
	"github.com/jsonpath-standard/jsonpath-reference-implementation/ast"
	"github.com/jsonpath-standard/jsonpath-reference-implementation/evaluator"
	"github.com/jsonpath-standard/jsonpath-reference-implementation/parser"
)

// SyntaxError reports a malformed path expression and the byte offset of
// the failure.
type SyntaxError = parser.SyntaxError

// Node is a matched value with its canonical location.
type Node = evaluator.Node

// Path is a parsed, immutable path expression. It holds no evaluation
// state, so a single Path is safe for concurrent use.
type Path struct {
	expr *ast.PathExpression
}

// Parse parses a path expression. On failure the returned error is a
// *SyntaxError.
func Parse(selector string) (*Path, error) {
	expr, err := parser.Parse(selector)
	if err != nil {
		return nil, err
	}

	return &Path{expr: expr}, nil
}

// Expression exposes the parsed selector sequence.
func (p *Path) Expression() *ast.PathExpression {
	return p.expr
}

// Find returns the values the expression matches in document, in match
// order. Values are shared references into the document tree.
func (p *Path) Find(document any) []any {
	return evaluator.Find(p.expr, document)
}

// FindNodes is Find with canonical locations attached to each match.
func (p *Path) FindNodes(document any) []Node {
	return evaluator.FindNodes(p.expr, document)
}

// String renders the expression in canonical form.
func (p *Path) String() string {
	return p.expr.String()
}
