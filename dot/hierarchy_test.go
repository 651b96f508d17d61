package dot

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/NickyBoy89/javagrader/parsing"
	"github.com/NickyBoy89/javagrader/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func facts(t *testing.T, file *parsing.SourceFile) *symbol.FileScope {
	t.Helper()
	require.NoError(t, file.ParseAST())
	defer file.Close()
	return symbol.ExtractFacts(file.Name, file.Ast, file.Source)
}

func TestHierarchyInPackage(t *testing.T) {
	file, err := parsing.Load(filepath.Join("..", "testfiles", "MultilevelInheritance.java"))
	require.NoError(t, err)

	var out strings.Builder
	graph := Hierarchy(facts(t, file), &out)
	require.NoError(t, graph.Write())

	expected := `digraph "hierarchy" {
  subgraph "cluster_com.example.assignment" {
    label="com.example.assignment"
    "Animal"
    "Dog"
    "Mammal"
    "MultilevelInheritance"
  }
  "Dog" -> {"Mammal"}
  "Mammal" -> {"Animal"}
}
`
	assert.Equal(t, expected, out.String())
	assert.True(t, graph.HasSubgraph("com.example.assignment"))
}

func TestHierarchyWithoutPackage(t *testing.T) {
	file := &parsing.SourceFile{Name: "Pets.java", Source: []byte(`
class Dog extends Mammal {}
class Cat extends Mammal {}
`)}

	var out strings.Builder
	graph := Hierarchy(facts(t, file), &out)
	require.NoError(t, graph.Write())

	expected := `digraph "hierarchy" {
  "Cat" -> {"Mammal"}
  "Dog" -> {"Mammal"}
  "Mammal"
}
`
	assert.Equal(t, expected, out.String())
	assert.True(t, graph.HasNode("Mammal"))
	assert.True(t, graph.HasEdge("Dog", "Mammal"))
	assert.False(t, graph.HasEdge("Mammal", "Dog"))
}

func TestAddEdge(t *testing.T) {
	var out strings.Builder
	graph := New("edges", &out)
	graph.AddEdge("a", "b")
	graph.AddEdge("a", "c")

	require.NoError(t, graph.Write())
	assert.Equal(t, "digraph \"edges\" {\n  \"a\" -> {\"b\", \"c\"}\n}\n", out.String())
	assert.Equal(t, "edges", graph.Name())
}
