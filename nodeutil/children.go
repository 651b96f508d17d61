package nodeutil

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Children returns the named children of a node
func Children(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		if child := node.NamedChild(i); child != nil {
			children = append(children, child)
		}
	}
	return children
}

// UnnamedChildren returns every child of a node, including anonymous tokens
// such as keywords and punctuation
func UnnamedChildren(node *sitter.Node) []*sitter.Node {
	count := int(node.ChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		if child := node.Child(i); child != nil {
			children = append(children, child)
		}
	}
	return children
}

// FindAll returns every named descendant of root (root included) whose type is
// one of the given kinds, in source order
func FindAll(root *sitter.Node, kinds ...string) []*sitter.Node {
	var found []*sitter.Node
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		for _, kind := range kinds {
			if node.Type() == kind {
				found = append(found, node)
				break
			}
		}
		for _, child := range Children(node) {
			walk(child)
		}
	}
	walk(root)
	return found
}

// FirstOfType returns the first direct named child of the given type, or nil
func FirstOfType(node *sitter.Node, kind string) *sitter.Node {
	for _, child := range Children(node) {
		if child.Type() == kind {
			return child
		}
	}
	return nil
}

// Line is the one-based line that the node starts on
func Line(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}
