// Package testrunner executes compliance-suite files against the parser and
// evaluator pipeline.
//
// A suite file is a JSON or YAML document with a top-level `tests` list.
// Each case carries a selector plus either an expected result list or an
// invalid_selector expectation. The `focus` flag is a debug aid: when any
// case is focused only focused cases run, and the whole suite is reported
// as failed so a focused file can never be merged green.
package testrunner

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	jsonpath "github.com/jsonpath-standard/jsonpath-reference-implementation"
)

// Sentinel errors
var (
	ErrSuiteStillFocused = errors.New("test case(s) still focused")
	ErrShouldHaveFailed  = errors.New("parsing should have failed")
	ErrParseFailed       = errors.New("parsing should have succeeded")
	ErrWrongResult       = errors.New("wrong result")
)

// Case is one compliance test case.
type Case struct {
	Name            string `yaml:"name"`
	Selector        string `yaml:"selector"`
	InvalidSelector bool   `yaml:"invalid_selector"`
	Document        any    `yaml:"document"`
	Result          []any  `yaml:"result"`
	Focus           bool   `yaml:"focus"`
}

// Suite is a set of compliance test cases.
type Suite struct {
	Tests []Case `yaml:"tests"`
}

// Failure records one failed case.
type Failure struct {
	Case *Case
	Err  error
}

// Outcome is the result of running a suite.
type Outcome struct {
	Ran      int
	Skipped  int
	Focused  bool
	Failures []Failure
}

// Failed reports whether the run must be treated as failing. A suite with a
// leftover focused case fails even when every executed case passed.
func (o *Outcome) Failed() bool {
	return len(o.Failures) > 0 || o.Focused
}

// Err summarizes a failed outcome, or returns nil.
func (o *Outcome) Err() error {
	if len(o.Failures) > 0 {
		return fmt.Errorf("%d of %d case(s) failed", len(o.Failures), o.Ran)
	}

	if o.Focused {
		return ErrSuiteStillFocused
	}

	return nil
}

// LoadSuite reads a suite file. Documents and expected results are decoded
// with ordered maps so that object member order survives into evaluation.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}

	var suite Suite
	if err := yaml.UnmarshalWithOptions(data, &suite, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to decode suite: %w", err)
	}

	return &suite, nil
}

// Run executes the suite and collects failures.
func (s *Suite) Run() *Outcome {
	outcome := &Outcome{}

	for i := range s.Tests {
		if s.Tests[i].Focus {
			outcome.Focused = true
			break
		}
	}

	for i := range s.Tests {
		testcase := &s.Tests[i]
		if outcome.Focused && !testcase.Focus {
			outcome.Skipped++
			continue
		}

		outcome.Ran++

		if err := runCase(testcase); err != nil {
			outcome.Failures = append(outcome.Failures, Failure{Case: testcase, Err: err})
		}
	}

	return outcome
}

func runCase(testcase *Case) error {
	path, err := jsonpath.Parse(testcase.Selector)

	if testcase.InvalidSelector {
		if err == nil {
			return fmt.Errorf("%w: %q parsed as %s", ErrShouldHaveFailed, testcase.Selector, path)
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrParseFailed, testcase.Selector, err)
	}

	actual := path.Find(testcase.Document)

	expected := testcase.Result
	if expected == nil {
		expected = []any{}
	}

	if !equalValueLists(actual, expected) {
		return fmt.Errorf("%w: expected %v, got %v", ErrWrongResult, expected, actual)
	}

	return nil
}
