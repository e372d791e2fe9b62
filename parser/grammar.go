package parser

import (
	"strconv"
	"strings"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/jsonpath-standard/jsonpath-reference-implementation/ast"
	tok "github.com/jsonpath-standard/jsonpath-reference-implementation/tokenizer"
)

// Terminal parsers
var (
	dot           = primitiveType("dot", tok.DOT)
	dotDot        = primitiveType("dotDot", tok.DOT_DOT)
	star          = primitiveType("star", tok.STAR)
	bracketOpen   = primitiveType("bracketOpen", tok.BRACKET_OPEN)
	bracketClose  = primitiveType("bracketClose", tok.BRACKET_CLOSE)
	comma         = primitiveType("comma", tok.COMMA)
	colon         = primitiveType("colon", tok.COLON)
	name          = primitiveType("name", tok.NAME)
	stringLiteral = primitiveType("string", tok.STRING)
	space         = primitiveType("space", tok.WHITESPACE)

	// sp consumes insignificant spaces between tokens of non-atomic rules.
	sp = pc.Drop(pc.ZeroOrMore("space", space))
)

// namedDotChild is `.` immediately followed by an unquoted child name.
// No space is permitted between the dot and the name.
var namedDotChild = pc.Trans(
	pc.Seq(dot, name),
	func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
		return reduceSelector(tokens[0], ast.DotNameSelector{Name: tokens[1].Val.Original.Value}), nil
	},
)

// wildcardedDotChild is the literal `.*`.
var wildcardedDotChild = pc.Trans(
	pc.Seq(dot, star),
	func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
		return reduceSelector(tokens[0], ast.DotWildcardSelector{}), nil
	},
)

// wildcardedIndex is `[*]`, with spaces allowed inside the brackets.
var wildcardedIndex = pc.Trans(
	pc.Seq(bracketOpen, sp, star, sp, bracketClose),
	func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
		return reduceSelector(tokens[0], ast.WildcardIndexSelector{}), nil
	},
)

// unionChild is a quoted child name; escapes are decoded here so that a
// malformed literal aborts the whole parse instead of backtracking.
var unionChild = pc.Trans(
	stringLiteral,
	func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
		decoded, err := unescape(tokens[0].Val.Original.Value)
		if err != nil {
			return nil, &invalidLiteralError{Position: tokens[0].Val.Original.Position, Cause: err}
		}

		return reduceElement(tokens[0], ast.NameElement{Name: decoded}), nil
	},
)

// unionArrayIndex is a bare signed integer.
var unionArrayIndex = pc.Trans(
	name,
	func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
		index, err := parseArrayIndex(tokens[0].Val.Original.Value)
		if err != nil {
			return nil, &invalidLiteralError{Position: tokens[0].Val.Original.Position, Cause: err}
		}

		return reduceElement(tokens[0], ast.IndexElement{Index: index}), nil
	},
)

// unionArraySlice is start?:end?(:step?)?. The bounds are reassembled from
// the kept tokens by counting colons, since every bound is optional.
var unionArraySlice = pc.Trans(
	pc.Seq(
		pc.Optional(name), sp,
		colon, sp,
		pc.Optional(name), sp,
		pc.Optional(pc.Seq(colon, sp, pc.Optional(name), sp)),
	),
	func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
		slice := ast.SliceElement{}
		part := 0

		for _, t := range tokens {
			original := t.Val.Original
			if original.Type == tok.COLON {
				part++
				continue
			}

			value, err := parseArrayIndex(original.Value)
			if err != nil {
				return nil, &invalidLiteralError{Position: original.Position, Cause: err}
			}

			switch part {
			case 0:
				slice.Start = &value
			case 1:
				slice.End = &value
			default:
				slice.Step = &value
			}
		}

		return reduceElement(tokens[0], slice), nil
	},
)

// unionElement ordering matters: a quoted name first, then a slice, then a
// plain index. Slice must be tried before index because both may start with
// an integer; only the following colon distinguishes them.
var unionElement = pc.Or(unionChild, unionArraySlice, unionArrayIndex)

// union is a bracketed, comma-separated list of union elements.
var union = pc.Trans(
	pc.Seq(
		bracketOpen, sp,
		unionElement, sp,
		pc.ZeroOrMore("union elements", pc.Seq(comma, sp, unionElement, sp)),
		bracketClose,
	),
	func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
		var elements []ast.UnionElement

		for _, t := range tokens {
			if t.Val.Element != nil {
				elements = append(elements, t.Val.Element)
			}
		}

		return reduceSelector(tokens[0], ast.UnionSelector{Elements: elements}), nil
	},
)

// Descendant targets: a bare child name or `*` directly after `..`, or a
// bracketed union / wildcarded index.
var (
	descendantName = pc.Trans(
		name,
		func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
			return reduceSelector(tokens[0], ast.DotNameSelector{Name: tokens[0].Val.Original.Value}), nil
		},
	)
	descendantWildcard = pc.Trans(
		star,
		func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
			return reduceSelector(tokens[0], ast.DotWildcardSelector{}), nil
		},
	)
)

// descendant is `..` immediately followed by its target; no space between.
var descendant = pc.Trans(
	pc.Seq(dotDot, pc.Or(descendantName, descendantWildcard, union, wildcardedIndex)),
	func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
		return reduceSelector(tokens[0], ast.DescendantSelector{Target: tokens[1].Val.Selector}), nil
	},
)

// matcher is one access step after the root. Union is tried before
// wildcardedIndex since both start with an opening bracket.
var matcher = pc.Or(wildcardedDotChild, namedDotChild, descendant, union, wildcardedIndex)

// parseArrayIndex validates and parses an integer literal: an optional `-`
// sign, no leading zeros other than the literal 0, 64-bit range.
func parseArrayIndex(s string) (int64, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, errInvalidIntegerf(s)
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, errInvalidIntegerf(s)
		}
	}

	if len(digits) > 1 && digits[0] == '0' {
		return 0, errInvalidIntegerf(s)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errInvalidIntegerf(s)
	}

	return n, nil
}
