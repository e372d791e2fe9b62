package parser

import (
	pc "github.com/shibukawa/parsercombinator"

	"github.com/jsonpath-standard/jsonpath-reference-implementation/ast"
	tok "github.com/jsonpath-standard/jsonpath-reference-implementation/tokenizer"
)

// Entity is the value carried by combinator tokens. Raw tokenizer tokens
// have only Original set; reduced tokens carry the AST fragment built from
// the consumed input.
type Entity struct {
	Original tok.Token        // the original token from the tokenizer
	Selector ast.Selector     // set once a matcher has been reduced
	Element  ast.UnionElement // set once a union element has been reduced
}

func tokenToEntity(tokens []tok.Token) []pc.Token[Entity] {
	results := make([]pc.Token[Entity], 0, len(tokens))

	for _, token := range tokens {
		if token.Type == tok.EOF {
			continue
		}

		pcToken := pc.Token[Entity]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: Entity{Original: token},
			Raw: token.Value,
		}
		results = append(results, pcToken)
	}

	return results
}

// primitiveType matches a single raw token of one of the given types.
func primitiveType(typeName string, types ...tok.TokenType) pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if len(tokens) > 0 {
			for _, tt := range types {
				if tokens[0].Val.Original.Type == tt {
					return 1, tokens[:1], nil
				}
			}
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// reduceSelector wraps an AST selector into a single combinator token,
// keeping the position of the first consumed token.
func reduceSelector(first pc.Token[Entity], sel ast.Selector) []pc.Token[Entity] {
	return []pc.Token[Entity]{
		{
			Type: "selector",
			Pos:  first.Pos,
			Val:  Entity{Original: first.Val.Original, Selector: sel},
		},
	}
}

// reduceElement wraps a union element into a single combinator token.
func reduceElement(first pc.Token[Entity], elem ast.UnionElement) []pc.Token[Entity] {
	return []pc.Token[Entity]{
		{
			Type: "unionElement",
			Pos:  first.Pos,
			Val:  Entity{Original: first.Val.Original, Element: elem},
		},
	}
}
