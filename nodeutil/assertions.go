package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// AssertTypeIs panics if the node is not of the expected type. It guards
// helpers that are only meaningful for one kind of node
func AssertTypeIs(node *sitter.Node, expectedTypes ...string) {
	for _, expected := range expectedTypes {
		if node.Type() == expected {
			return
		}
	}
	panic(fmt.Sprintf("assertion failed: Type of node differs from expected: %v, got: %s", expectedTypes, node.Type()))
}
