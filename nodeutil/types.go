package nodeutil

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// SimpleTypeName reduces a Java type node to the unqualified name of the type
// it refers to, dropping package qualifiers and type arguments
// Ex: java.util.List<String> -> List
func SimpleTypeName(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "type_identifier", "identifier":
		return node.Content(source)
	case "scoped_type_identifier", "scoped_identifier":
		// The last component is the name, everything before it is the scope
		children := Children(node)
		for i := len(children) - 1; i >= 0; i-- {
			if children[i].Type() == "type_identifier" || children[i].Type() == "identifier" {
				return children[i].Content(source)
			}
		}
	case "generic_type", "annotated_type", "superclass", "type_list", "extends_interfaces":
		// The first type-like child is the one being referred to
		for _, child := range Children(node) {
			if name := SimpleTypeName(child, source); name != "" {
				return name
			}
		}
	}
	return ""
}
