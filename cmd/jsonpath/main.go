package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	jsonpath "github.com/jsonpath-standard/jsonpath-reference-implementation"
	"github.com/jsonpath-standard/jsonpath-reference-implementation/testrunner"
)

var version = "0.1.0"

// QueryCmd evaluates a path expression against a JSON document
type QueryCmd struct {
	Selector  string `arg:"" help:"Path expression, e.g. $.store.book[0].title"`
	File      string `arg:"" optional:"" help:"JSON document file (stdin when omitted)"`
	Locations bool   `help:"Print the canonical location of each match" short:"l"`
}

// Run executes the query command
func (cmd *QueryCmd) Run() error {
	data, err := readDocument(cmd.File)
	if err != nil {
		return err
	}

	var document any
	if err := yaml.UnmarshalWithOptions(data, &document, yaml.UseOrderedMap()); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	path, err := jsonpath.Parse(cmd.Selector)
	if err != nil {
		reportSyntaxError(cmd.Selector, err)
		return err
	}

	for _, node := range path.FindNodes(document) {
		if cmd.Locations {
			fmt.Printf("%s\t%s\n", color.CyanString(node.Location), encodeJSON(node.Value))
		} else {
			fmt.Println(encodeJSON(node.Value))
		}
	}

	return nil
}

// CtsCmd runs a compliance suite file against the pipeline
type CtsCmd struct {
	File    string `arg:"" help:"Compliance suite file (JSON or YAML)"`
	Verbose bool   `help:"List every executed case" short:"v"`
}

// Run executes the cts command
func (cmd *CtsCmd) Run() error {
	suite, err := testrunner.LoadSuite(cmd.File)
	if err != nil {
		return err
	}

	outcome := suite.Run()

	if cmd.Verbose {
		failed := make(map[string]bool, len(outcome.Failures))
		for _, failure := range outcome.Failures {
			failed[failure.Case.Name] = true
		}

		for i := range suite.Tests {
			testcase := &suite.Tests[i]
			switch {
			case outcome.Focused && !testcase.Focus:
				fmt.Printf("%s %s\n", color.YellowString("SKIP"), testcase.Name)
			case failed[testcase.Name]:
				fmt.Printf("%s %s\n", color.RedString("FAIL"), testcase.Name)
			default:
				fmt.Printf("%s %s\n", color.GreenString("PASS"), testcase.Name)
			}
		}
	}

	for _, failure := range outcome.Failures {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", color.RedString("FAIL"), failure.Case.Name, failure.Err)
	}

	if outcome.Failed() {
		return outcome.Err()
	}

	fmt.Printf("%s %d case(s), %d skipped\n", color.GreenString("PASS"), outcome.Ran, outcome.Skipped)

	return nil
}

// VersionCmd prints the version
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("jsonpath v" + version)
	return nil
}

var CLI struct {
	Query   QueryCmd   `cmd:"" help:"Evaluate a path expression against a JSON document"`
	Cts     CtsCmd     `cmd:"" help:"Run a compliance suite file"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

func readDocument(file string) ([]byte, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return data, nil
}

// reportSyntaxError points at the offending offset of the expression.
func reportSyntaxError(selector string, err error) {
	var syntaxErr *jsonpath.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return
	}

	fmt.Fprintln(os.Stderr, selector)
	fmt.Fprintln(os.Stderr, strings.Repeat(" ", syntaxErr.Offset)+color.RedString("^"))
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("jsonpath"),
		kong.Description("Reference implementation of JSONPath path expressions"),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
