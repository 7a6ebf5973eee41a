package validation

import "fmt"

// Tree is one node of an engine validation result. A node either carries a
// reportable failure of its own (a leaf) or holds children to recurse into,
// never both.
type Tree interface {
	// Describe returns the offending value, the property it belongs to, and
	// the engine's message for this node.
	Describe() (value, property, message string)

	// Children returns the nested results in engine order. An empty slice
	// marks a leaf.
	Children() []Tree
}

// Result is the wire form of a validation node as the engine encodes it.
type Result struct {
	Value    string   `json:"value"`
	Property string   `json:"propertyName"`
	Message  string   `json:"message"`
	Nested   []Result `json:"children"`
}

// Describe implements Tree.
func (r Result) Describe() (string, string, string) {
	return r.Value, r.Property, r.Message
}

// Children implements Tree.
func (r Result) Children() []Tree {
	out := make([]Tree, len(r.Nested))
	for i, child := range r.Nested {
		out[i] = child
	}
	return out
}

// Line formats one leaf failure as a single diagnostic.
func Line(value, property, message string) string {
	return fmt.Sprintf("'%s' is invalid for '%s': %q", value, property, message)
}

// Report walks the tree depth-first and calls emit once per leaf, in tree
// order. Branch nodes are recursed into, never reported themselves. A
// childless root counts as a leaf and yields exactly one line.
func Report(root Tree, emit func(line string)) {
	children := root.Children()
	if len(children) == 0 {
		emit(Line(root.Describe()))
		return
	}
	for _, child := range children {
		Report(child, emit)
	}
}

// Lines collects Report's output into a slice, in emission order.
func Lines(root Tree) []string {
	out := make([]string, 0)
	Report(root, func(line string) {
		out = append(out, line)
	})
	return out
}
