package dot

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Dotfile is a digraph that is written out in Graphviz's dot language
type Dotfile struct {
	SubGraph
	out io.Writer
}

func (d Dotfile) Name() string {
	return d.SubGraph.Name()
}

type GraphPrinter interface {
	AsDot() (string, []Edge)
	Name() string
}

// GraphItem is any item in the graph
type GraphItem interface {
	GraphPrinter
	HasSubgraph(name string) bool         // Whether the item has the given subgraph
	Subgraph(name string) GraphItem       // Returns the named subgraph, adding it if necessary
	AddNode(name string, edges ...string) // Adds a node to the graph
}

type Edge struct {
	From string
	To   []string
}

type SubGraph struct {
	name      string
	nodes     map[string]Node
	subgraphs map[string]GraphItem
}

// Methods for GraphItem
func (g SubGraph) HasSubgraph(name string) bool {
	_, has := g.subgraphs[name]
	return has
}

func (g *SubGraph) Subgraph(name string) GraphItem {
	if g.subgraphs == nil {
		g.subgraphs = make(map[string]GraphItem)
	}
	if _, in := g.subgraphs[name]; !in {
		g.subgraphs[name] = &SubGraph{name: name}
	}
	return g.subgraphs[name]
}

func (g *SubGraph) AddNode(name string, edges ...string) {
	if g.nodes == nil {
		g.nodes = make(map[string]Node)
	}
	g.nodes[name] = Node{name: name, edges: edges}
}

func (g SubGraph) Name() string {
	return g.name
}

// AsDot renders the subgraph as a cluster. Edges are returned rather than
// written, since they have to be declared outside of every cluster
func (g SubGraph) AsDot() (string, []Edge) {
	totalEdges := []Edge{}
	var total strings.Builder
	fmt.Fprintf(&total, "  subgraph %s {\n", quote("cluster_"+g.name))
	fmt.Fprintf(&total, "    label=%s\n", quote(g.name))
	for _, name := range sortedKeys(g.nodes) {
		item := g.nodes[name]
		totalEdges = append(totalEdges, Edge{From: item.name, To: item.edges})
		total.WriteString("    " + quote(item.Name()) + "\n")
	}
	for _, name := range sortedKeys(g.subgraphs) {
		sub, edges := g.subgraphs[name].AsDot()
		total.WriteString(sub + "\n")
		totalEdges = append(totalEdges, edges...)
	}
	total.WriteString("  }")
	return total.String(), totalEdges
}

type Node struct {
	name  string
	edges []string
}

func (n Node) Name() string {
	return n.name
}

// New creates an empty graph that is written to out
func New(name string, out io.Writer) *Dotfile {
	return &Dotfile{SubGraph: SubGraph{name: name}, out: out}
}

func (d *Dotfile) HasNode(name string) bool {
	_, in := d.nodes[name]
	return in
}

func (d *Dotfile) AddEdge(node string, edge string) {
	if d.nodes == nil {
		d.nodes = make(map[string]Node)
	}
	temp := d.nodes[node]
	// If the node doesn't exist, create it
	if temp.name == "" {
		temp = Node{name: node}
	}
	temp.edges = append(temp.edges, edge)
	d.nodes[node] = temp
}

func (d *Dotfile) HasEdge(node string, edge string) bool {
	return slices.Contains(d.nodes[node].edges, edge)
}

func quote(name string) string {
	return "\"" + strings.ReplaceAll(name, "\"", "\\\"") + "\""
}

func commaSeparatedString(list []string) string {
	quoted := make([]string, len(list))
	for ind, item := range list {
		quoted[ind] = quote(item)
	}
	return strings.Join(quoted, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Write renders the whole graph. Output is deterministic, nodes and clusters
// are sorted by name
func (d *Dotfile) Write() error {
	var total strings.Builder
	totalEdges := []Edge{}
	total.WriteString("digraph " + quote(d.name) + " {\n")

	// First, write out all the subgraphs
	for _, name := range sortedKeys(d.subgraphs) {
		sub, edges := d.subgraphs[name].AsDot()
		totalEdges = append(totalEdges, edges...)
		total.WriteString(sub + "\n")
	}

	// Then, go through the nodes
	for _, name := range sortedKeys(d.nodes) {
		node := d.nodes[name]
		if len(node.edges) == 0 {
			fmt.Fprintf(&total, "  %s\n", quote(name))
			continue
		}
		fmt.Fprintf(&total, "  %s -> {%s}\n", quote(name), commaSeparatedString(node.edges))
	}

	// Finally, connect all the edges from everything else
	for _, edge := range totalEdges {
		// Skip creating edges that don't point anywhere
		if len(edge.To) == 0 {
			continue
		}
		// Also skip empty nodes
		if edge.From == "" {
			continue
		}
		fmt.Fprintf(&total, "  %s -> {%s}\n", quote(edge.From), commaSeparatedString(edge.To))
	}
	total.WriteString("}\n")

	_, err := io.WriteString(d.out, total.String())
	return err
}
