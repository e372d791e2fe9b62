package evaluator

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/jsonpath-standard/jsonpath-reference-implementation/ast"
)

func slice(start, end, step *int64) ast.SliceElement {
	return ast.SliceElement{Start: start, End: end, Step: step}
}

func intp(v int64) *int64 {
	return &v
}

func TestSliceIndices(t *testing.T) {
	tests := []struct {
		name     string
		slice    ast.SliceElement
		length   int
		expected []int
	}{
		{name: "full default", slice: slice(nil, nil, nil), length: 4, expected: []int{0, 1, 2, 3}},
		{name: "start only", slice: slice(intp(1), nil, nil), length: 4, expected: []int{1, 2, 3}},
		{name: "end only", slice: slice(nil, intp(2), nil), length: 4, expected: []int{0, 1}},
		{name: "start and end", slice: slice(intp(1), intp(3), nil), length: 4, expected: []int{1, 2}},
		{name: "step two", slice: slice(nil, nil, intp(2)), length: 5, expected: []int{0, 2, 4}},
		{name: "zero step", slice: slice(intp(0), intp(4), intp(0)), length: 4, expected: nil},
		{name: "negative start", slice: slice(intp(-2), nil, nil), length: 4, expected: []int{2, 3}},
		{name: "negative end", slice: slice(nil, intp(-1), nil), length: 4, expected: []int{0, 1, 2}},
		{name: "start clamps low", slice: slice(intp(-10), nil, nil), length: 3, expected: []int{0, 1, 2}},
		{name: "end clamps high", slice: slice(nil, intp(10), nil), length: 3, expected: []int{0, 1, 2}},
		{name: "start beyond length", slice: slice(intp(5), nil, nil), length: 3, expected: nil},
		{name: "empty range", slice: slice(intp(2), intp(2), nil), length: 4, expected: nil},
		{name: "reverse full", slice: slice(nil, nil, intp(-1)), length: 4, expected: []int{3, 2, 1, 0}},
		{name: "reverse with start", slice: slice(intp(2), nil, intp(-1)), length: 4, expected: []int{2, 1, 0}},
		{name: "reverse with end", slice: slice(nil, intp(0), intp(-1)), length: 4, expected: []int{3, 2, 1}},
		{name: "reverse negative start", slice: slice(intp(-1), intp(0), intp(-1)), length: 4, expected: []int{3, 2, 1}},
		{name: "reverse step two", slice: slice(nil, nil, intp(-2)), length: 5, expected: []int{4, 2, 0}},
		{name: "reverse start clamps high", slice: slice(intp(10), nil, intp(-1)), length: 3, expected: []int{2, 1, 0}},
		{name: "reverse end clamps low", slice: slice(nil, intp(-10), intp(-1)), length: 3, expected: []int{2, 1, 0}},
		{name: "empty array", slice: slice(nil, nil, nil), length: 0, expected: nil},
		{name: "empty array reversed", slice: slice(nil, nil, intp(-1)), length: 0, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sliceIndices(tt.slice, tt.length))
		})
	}
}
