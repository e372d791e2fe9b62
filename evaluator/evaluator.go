// Package evaluator applies a parsed path expression to a document value.
//
// Documents are in-memory JSON trees: yaml.MapSlice for objects when member
// order matters, map[string]any otherwise, []any for arrays and Go scalars
// for leaves. Evaluation cannot fail: type mismatches and out-of-range
// access contribute no matches instead of returning errors.
package evaluator

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jsonpath-standard/jsonpath-reference-implementation/ast"
)

// Node is one matched value together with its canonical location, e.g.
// $['store']['book'][0]. Value is a shared reference into the document tree,
// never a copy.
type Node struct {
	Value    any
	Location string
}

// Find returns the values matched by the expression, in match order.
func Find(path *ast.PathExpression, document any) []any {
	nodes := FindNodes(path, document)

	values := make([]any, len(nodes))
	for i, node := range nodes {
		values[i] = node.Value
	}

	return values
}

// FindNodes returns the matched nodes with their locations. The working
// match set starts as the document alone and each selector transforms it in
// turn; the survivors of the last selector are the result.
func FindNodes(path *ast.PathExpression, document any) []Node {
	matches := []Node{}

	for _, selector := range path.Selectors {
		if _, ok := selector.(ast.RootSelector); ok {
			matches = []Node{{Value: document, Location: "$"}}
			continue
		}

		next := make([]Node, 0, len(matches))
		for _, node := range matches {
			next = applySelector(selector, node, next)
		}

		matches = next
	}

	return matches
}

// applySelector appends the matches of one selector against one node.
func applySelector(selector ast.Selector, node Node, out []Node) []Node {
	switch s := selector.(type) {
	case ast.RootSelector:
		return append(out, node)
	case ast.DotNameSelector:
		return appendChild(node, s.Name, out)
	case ast.DotWildcardSelector:
		return appendAllMembers(node, out)
	case ast.WildcardIndexSelector:
		return appendAllMembers(node, out)
	case ast.UnionSelector:
		for _, element := range s.Elements {
			out = applyElement(element, node, out)
		}

		return out
	case ast.DescendantSelector:
		walkSubtree(node, func(visited Node) {
			out = applySelector(s.Target, visited, out)
		})

		return out
	default:
		return out
	}
}

// applyElement appends the matches of one union element against one node.
func applyElement(element ast.UnionElement, node Node, out []Node) []Node {
	switch e := element.(type) {
	case ast.NameElement:
		return appendChild(node, e.Name, out)
	case ast.IndexElement:
		elements := arrayElements(node.Value)

		index, ok := resolveIndex(e.Index, len(elements))
		if !ok {
			return out
		}

		return append(out, elementNode(node, index, elements[index]))
	case ast.SliceElement:
		elements := arrayElements(node.Value)
		for _, index := range sliceIndices(e, len(elements)) {
			out = append(out, elementNode(node, index, elements[index]))
		}

		return out
	default:
		return out
	}
}

// walkSubtree visits node and every value beneath it in pre-order: the node
// itself first, then object members in definition order or array elements
// in index order, recursively.
func walkSubtree(node Node, visit func(Node)) {
	visit(node)

	for _, m := range objectMembers(node.Value) {
		walkSubtree(memberNode(node, m), visit)
	}

	for index, value := range arrayElements(node.Value) {
		walkSubtree(elementNode(node, index, value), visit)
	}
}

// member is one object entry; objectMembers fixes the iteration order.
type member struct {
	key   string
	value any
}

// objectMembers lists the members of an object value. yaml.MapSlice keeps
// its definition order; plain maps have none, so their keys are sorted for
// deterministic results. Non-objects yield nothing.
func objectMembers(value any) []member {
	switch v := value.(type) {
	case yaml.MapSlice:
		members := make([]member, 0, len(v))
		for _, item := range v {
			members = append(members, member{key: memberKey(item.Key), value: item.Value})
		}

		return members
	case map[string]any:
		keys := slices.Sorted(maps.Keys(v))

		members := make([]member, 0, len(keys))
		for _, key := range keys {
			members = append(members, member{key: key, value: v[key]})
		}

		return members
	default:
		return nil
	}
}

// arrayElements returns the elements of an array value, or nil.
func arrayElements(value any) []any {
	if elements, ok := value.([]any); ok {
		return elements
	}

	return nil
}

// appendChild appends the member of node named name, if node is an object
// that has it. The first occurrence wins when an ordered document carries
// duplicate keys.
func appendChild(node Node, name string, out []Node) []Node {
	switch v := node.Value.(type) {
	case yaml.MapSlice:
		for _, item := range v {
			if memberKey(item.Key) == name {
				return append(out, memberNode(node, member{key: name, value: item.Value}))
			}
		}
	case map[string]any:
		if value, ok := v[name]; ok {
			return append(out, memberNode(node, member{key: name, value: value}))
		}
	}

	return out
}

// appendAllMembers appends every direct member value of an object or every
// element of an array, in source order. Scalars contribute nothing.
func appendAllMembers(node Node, out []Node) []Node {
	for _, m := range objectMembers(node.Value) {
		out = append(out, memberNode(node, m))
	}

	for index, value := range arrayElements(node.Value) {
		out = append(out, elementNode(node, index, value))
	}

	return out
}

// resolveIndex maps a possibly negative index onto [0, length).
func resolveIndex(index int64, length int) (int, bool) {
	if index < 0 {
		index += int64(length)
	}

	if index < 0 || index >= int64(length) {
		return 0, false
	}

	return int(index), true
}

func memberKey(key any) string {
	if s, ok := key.(string); ok {
		return s
	}

	return fmt.Sprint(key)
}

func memberNode(parent Node, m member) Node {
	return Node{Value: m.value, Location: parent.Location + "['" + escapeName(m.key) + "']"}
}

func elementNode(parent Node, index int, value any) Node {
	return Node{Value: value, Location: parent.Location + "[" + strconv.Itoa(index) + "]"}
}

var nameEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func escapeName(name string) string {
	return nameEscaper.Replace(name)
}
