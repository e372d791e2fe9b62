package evaluator

import (
	"github.com/jsonpath-standard/jsonpath-reference-implementation/ast"
)

// sliceIndices computes the array indices selected by a slice over an array
// of the given length, in traversal order. The rules are Python's: step
// defaults to 1 and a zero step selects nothing; omitted bounds default to
// the full array in the direction of travel; negative bounds count from the
// end; out-of-range bounds clamp instead of failing.
func sliceIndices(slice ast.SliceElement, length int) []int {
	n := int64(length)

	step := int64(1)
	if slice.Step != nil {
		step = *slice.Step
	}

	if step == 0 {
		return nil
	}

	var indices []int

	if step > 0 {
		start, end := int64(0), n
		if slice.Start != nil {
			start = clamp(normalize(*slice.Start, n), 0, n)
		}

		if slice.End != nil {
			end = clamp(normalize(*slice.End, n), 0, n)
		}

		for i := start; i < end; i += step {
			indices = append(indices, int(i))
		}

		return indices
	}

	// Negative step: defaults mirror the positive case, last element down
	// to before-the-first, and clamping happens into [-1, n-1].
	start, end := n-1, int64(-1)
	if slice.Start != nil {
		start = clamp(normalize(*slice.Start, n), -1, n-1)
	}

	if slice.End != nil {
		end = clamp(normalize(*slice.End, n), -1, n-1)
	}

	for i := start; i > end; i += step {
		indices = append(indices, int(i))
	}

	return indices
}

func normalize(i, length int64) int64 {
	if i < 0 {
		return i + length
	}

	return i
}

func clamp(i, low, high int64) int64 {
	if i < low {
		return low
	}

	if i > high {
		return high
	}

	return i
}
