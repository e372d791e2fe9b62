package jsonpath_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/goccy/go-yaml"

	jsonpath "github.com/jsonpath-standard/jsonpath-reference-implementation"
)

func decode(t *testing.T, src string) any {
	t.Helper()

	var v any

	err := yaml.UnmarshalWithOptions([]byte(src), &v, yaml.UseOrderedMap())
	assert.NoError(t, err)

	return v
}

func TestParseAndFind(t *testing.T) {
	document := decode(t, `{"foo": {"bar": {"baz": [10, 20, 30, 40, 50, 60]}}}`)

	path, err := jsonpath.Parse(`$.foo['bar'].*[4,-1]`)
	assert.NoError(t, err)

	values := path.Find(document)
	assert.Equal(t, 2, len(values))
	assert.Equal(t, "50", fmt.Sprint(values[0]))
	assert.Equal(t, "60", fmt.Sprint(values[1]))
}

func TestParseError(t *testing.T) {
	_, err := jsonpath.Parse("$[")

	var syntaxErr *jsonpath.SyntaxError

	assert.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 1, syntaxErr.Offset)
}

func TestFindOnEmptyResult(t *testing.T) {
	path, err := jsonpath.Parse("$.nope")
	assert.NoError(t, err)

	values := path.Find(decode(t, `{"a": 1}`))
	assert.Equal(t, []any{}, values)
}

func TestPathString(t *testing.T) {
	path, err := jsonpath.Parse("$ .foo [ 0 , 1:2 ]")
	assert.NoError(t, err)
	assert.Equal(t, "$.foo[0,1:2]", path.String())
}

func TestPathIsReusable(t *testing.T) {
	path, err := jsonpath.Parse("$[0]")
	assert.NoError(t, err)

	assert.Equal(t, []any{"a"}, path.Find([]any{"a"}))
	assert.Equal(t, []any{1}, path.Find([]any{1, 2}))
}

func Example() {
	document := []any{"first", "second", "third"}

	path, err := jsonpath.Parse("$[::-1]")
	if err != nil {
		panic(err)
	}

	for _, node := range path.FindNodes(document) {
		fmt.Printf("%s = %v\n", node.Location, node.Value)
	}
	// Output:
	// $[2] = third
	// $[1] = second
	// $[0] = first
}
