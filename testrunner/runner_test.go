package testrunner

import (
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplianceSuite(t *testing.T) {
	suite, err := LoadSuite("testdata/cts.json")
	require.NoError(t, err)
	require.NotEmpty(t, suite.Tests)

	outcome := suite.Run()

	for _, failure := range outcome.Failures {
		t.Errorf("%s: %v", failure.Case.Name, failure.Err)
	}

	assert.False(t, outcome.Focused, "test case(s) still focused")
	assert.Equal(t, len(suite.Tests), outcome.Ran)
}

func TestLoadSuitePreservesMemberOrder(t *testing.T) {
	suite, err := LoadSuite("testdata/cts.json")
	require.NoError(t, err)

	for _, testcase := range suite.Tests {
		if testcase.Name != "dot wildcard over object preserves order" {
			continue
		}

		doc, ok := testcase.Document.(yaml.MapSlice)
		require.True(t, ok, "object documents must decode as ordered maps")
		assert.Equal(t, "a", doc[0].Key)
		assert.Equal(t, "b", doc[1].Key)

		return
	}

	t.Fatal("expected case not found in suite")
}

func TestFocusRunsOnlyFocusedCases(t *testing.T) {
	suite := &Suite{
		Tests: []Case{
			{Name: "broken but unfocused", Selector: "$.a", Document: yaml.MapSlice{{Key: "a", Value: int64(1)}}, Result: []any{int64(999)}},
			{Name: "focused", Selector: "$", Document: int64(7), Result: []any{int64(7)}, Focus: true},
		},
	}

	outcome := suite.Run()

	assert.Equal(t, 1, outcome.Ran)
	assert.Equal(t, 1, outcome.Skipped)
	assert.Empty(t, outcome.Failures)
	assert.True(t, outcome.Focused)
	assert.True(t, outcome.Failed(), "a focused suite must fail even when all focused cases pass")
	assert.True(t, errors.Is(outcome.Err(), ErrSuiteStillFocused))
}

func TestRunReportsFailures(t *testing.T) {
	suite := &Suite{
		Tests: []Case{
			{Name: "wrong result", Selector: "$", Document: int64(1), Result: []any{int64(2)}},
			{Name: "should be invalid", Selector: "$", InvalidSelector: true},
			{Name: "should be valid", Selector: "$[", Document: int64(1), Result: []any{}},
		},
	}

	outcome := suite.Run()

	require.Len(t, outcome.Failures, 3)
	assert.True(t, errors.Is(outcome.Failures[0].Err, ErrWrongResult))
	assert.True(t, errors.Is(outcome.Failures[1].Err, ErrShouldHaveFailed))
	assert.True(t, errors.Is(outcome.Failures[2].Err, ErrParseFailed))
	assert.Error(t, outcome.Err())
}

func TestEqualValues(t *testing.T) {
	tests := []struct {
		name  string
		a, b  any
		equal bool
	}{
		{name: "numeric types", a: int64(2), b: float64(2), equal: true},
		{name: "uint64 vs int64", a: uint64(3), b: int64(3), equal: true},
		{name: "different numbers", a: int64(2), b: int64(3), equal: false},
		{name: "number vs string", a: int64(2), b: "2", equal: false},
		{name: "nested objects", a: yaml.MapSlice{{Key: "a", Value: []any{int64(1)}}}, b: yaml.MapSlice{{Key: "a", Value: []any{uint64(1)}}}, equal: true},
		{name: "member order matters", a: yaml.MapSlice{{Key: "a", Value: int64(1)}, {Key: "b", Value: int64(2)}}, b: yaml.MapSlice{{Key: "b", Value: int64(2)}, {Key: "a", Value: int64(1)}}, equal: false},
		{name: "nil values", a: nil, b: nil, equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, equalValues(tt.a, tt.b))
		})
	}
}
