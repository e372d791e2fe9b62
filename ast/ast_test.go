package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func intp(v int64) *int64 {
	return &v
}

func TestPathExpressionString(t *testing.T) {
	expr := &PathExpression{
		Selectors: []Selector{
			RootSelector{},
			DotNameSelector{Name: "foo"},
			DotWildcardSelector{},
			WildcardIndexSelector{},
			UnionSelector{Elements: []UnionElement{
				NameElement{Name: "bar"},
				IndexElement{Index: -1},
				SliceElement{Start: intp(1), End: intp(2), Step: intp(-1)},
				SliceElement{End: intp(3)},
				SliceElement{},
			}},
			DescendantSelector{Target: DotNameSelector{Name: "baz"}},
			DescendantSelector{Target: DotWildcardSelector{}},
			DescendantSelector{Target: WildcardIndexSelector{}},
			DescendantSelector{Target: UnionSelector{Elements: []UnionElement{IndexElement{Index: 0}}}},
		},
	}

	assert.Equal(t, "$.foo.*[*]['bar',-1,1:2:-1,:3,:]..baz..*..[*]..[0]", expr.String())
}

func TestNameElementStringEscapes(t *testing.T) {
	assert.Equal(t, `'it\'s'`, NameElement{Name: "it's"}.String())
	assert.Equal(t, `'a\\b'`, NameElement{Name: `a\b`}.String())
}
