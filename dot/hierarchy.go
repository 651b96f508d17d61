package dot

import (
	"io"

	"github.com/NickyBoy89/javagrader/symbol"
)

// Hierarchy builds the inheritance graph of every type declared in a file. Each
// type points at the type it extends, and the types are clustered by the
// file's package. Parents that are not declared in the file still get a node
func Hierarchy(facts *symbol.FileScope, out io.Writer) *Dotfile {
	graph := New("hierarchy", out)

	var declared GraphItem = &graph.SubGraph
	if facts.Package != "" {
		declared = graph.Subgraph(facts.Package)
	}

	for _, class := range facts.Classes {
		if class.HasParent() {
			declared.AddNode(class.Name, class.Parent)
		} else {
			declared.AddNode(class.Name)
		}
	}

	for _, class := range facts.Classes {
		if class.HasParent() && facts.Class(class.Parent) == nil && !graph.HasNode(class.Parent) {
			graph.AddNode(class.Parent)
		}
	}

	return graph
}
