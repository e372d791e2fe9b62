package testrunner

import (
	"github.com/goccy/go-yaml"
)

func equalValueLists(actual, expected []any) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i := range actual {
		if !equalValues(actual[i], expected[i]) {
			return false
		}
	}

	return true
}

// equalValues compares two decoded JSON values structurally. Numbers are
// compared by value regardless of the concrete Go type the decoder chose
// (int64 vs uint64 vs float64); objects compare key-by-key in order.
func equalValues(a, b any) bool {
	switch av := a.(type) {
	case yaml.MapSlice:
		bv, ok := b.(yaml.MapSlice)
		if !ok || len(av) != len(bv) {
			return false
		}

		for i := range av {
			if !equalValues(av[i].Key, bv[i].Key) || !equalValues(av[i].Value, bv[i].Value) {
				return false
			}
		}

		return true
	case []any:
		bv, ok := b.([]any)
		if !ok {
			return false
		}

		return equalValueLists(av, bv)
	default:
		if an, ok := numericValue(a); ok {
			bn, bok := numericValue(b)
			return bok && an == bn
		}

		return a == b
	}
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
