// Package ast defines the typed selector sequence produced by the parser and
// consumed by the evaluator.
//
// A path expression such as `$.foo['bar'].*[4,-1]` becomes a PathExpression
// whose selectors are applied left to right: Root, then DotName("foo"), then
// Union[Name("bar")], then DotWildcard, then Union[Index(4), Index(-1)].
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// PathExpression is the parsed, immutable form of a query string. The first
// selector is always RootSelector.
type PathExpression struct {
	Selectors []Selector
}

// String renders the expression in canonical form (quoted names use single
// quotes, slices always carry their colons).
func (p *PathExpression) String() string {
	var builder strings.Builder
	for _, sel := range p.Selectors {
		builder.WriteString(sel.String())
	}

	return builder.String()
}

// Selector is one step of a path expression. The variant set is closed:
// RootSelector, DotNameSelector, DotWildcardSelector, WildcardIndexSelector,
// UnionSelector and DescendantSelector.
type Selector interface {
	fmt.Stringer
	selector()
}

// RootSelector matches the whole document. It is always the first selector
// and appears exactly once.
type RootSelector struct{}

func (RootSelector) selector()      {}
func (RootSelector) String() string { return "$" }

// DotNameSelector is dot-accessed member access by exact key, e.g. `.foo`.
type DotNameSelector struct {
	Name string
}

func (DotNameSelector) selector() {}
func (s DotNameSelector) String() string {
	return "." + s.Name
}

// DotWildcardSelector is `.*`: all member values of an object or all
// elements of an array, in source order.
type DotWildcardSelector struct{}

func (DotWildcardSelector) selector()      {}
func (DotWildcardSelector) String() string { return ".*" }

// WildcardIndexSelector is `[*]`, with the same matching rule as
// DotWildcardSelector.
type WildcardIndexSelector struct{}

func (WildcardIndexSelector) selector()      {}
func (WildcardIndexSelector) String() string { return "[*]" }

// UnionSelector is a bracketed comma-separated element list. Elements apply
// independently to each incoming node and their matches concatenate in
// listed order, without de-duplication.
type UnionSelector struct {
	Elements []UnionElement
}

func (UnionSelector) selector() {}
func (s UnionSelector) String() string {
	parts := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		parts[i] = e.String()
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// DescendantSelector is `..` recursive search. Target is the selector
// applied at every node of each subtree: DotNameSelector,
// DotWildcardSelector, WildcardIndexSelector or UnionSelector.
type DescendantSelector struct {
	Target Selector
}

func (DescendantSelector) selector() {}
func (s DescendantSelector) String() string {
	switch t := s.Target.(type) {
	case DotNameSelector:
		return ".." + t.Name
	case DotWildcardSelector:
		return "..*"
	default:
		return ".." + t.String()
	}
}

// UnionElement is one element of a UnionSelector: NameElement,
// IndexElement or SliceElement.
type UnionElement interface {
	fmt.Stringer
	unionElement()
}

// NameElement is a quoted child name with escapes already decoded.
type NameElement struct {
	Name string
}

func (NameElement) unionElement() {}
func (e NameElement) String() string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(e.Name) + "'"
}

// IndexElement is a single array index; negative values count from the end.
type IndexElement struct {
	Index int64
}

func (IndexElement) unionElement() {}
func (e IndexElement) String() string {
	return strconv.FormatInt(e.Index, 10)
}

// SliceElement is a Python-style array slice. Nil fields were omitted in the
// source expression and take their direction-dependent defaults during
// evaluation.
type SliceElement struct {
	Start *int64
	End   *int64
	Step  *int64
}

func (SliceElement) unionElement() {}
func (e SliceElement) String() string {
	var builder strings.Builder
	if e.Start != nil {
		builder.WriteString(strconv.FormatInt(*e.Start, 10))
	}

	builder.WriteByte(':')

	if e.End != nil {
		builder.WriteString(strconv.FormatInt(*e.End, 10))
	}

	if e.Step != nil {
		builder.WriteByte(':')
		builder.WriteString(strconv.FormatInt(*e.Step, 10))
	}

	return builder.String()
}
