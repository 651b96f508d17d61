package symbol

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Kinds of type declarations that produce a ClassFact
const (
	KindClass      = "class"
	KindInterface  = "interface"
	KindEnum       = "enum"
	KindRecord     = "record"
	KindAnnotation = "annotation"
)

// ClassFact describes a single declared type
type ClassFact struct {
	Name string `json:"name" yaml:"name"`
	// The simple name of the first extended type, empty if there is none
	Parent    string   `json:"parent,omitempty" yaml:"parent,omitempty"`
	Kind      string   `json:"kind" yaml:"kind"`
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Line      int      `json:"line" yaml:"line"`
}

// HasParent reports whether the type extends anything
func (c ClassFact) HasParent() bool {
	return c.Parent != ""
}

func (c ClassFact) String() string {
	if c.HasParent() {
		return fmt.Sprintf("%s %s extends %s", c.Kind, c.Name, c.Parent)
	}
	return fmt.Sprintf("%s %s", c.Kind, c.Name)
}

// MethodFact describes a single declared method. Constructors are not methods
type MethodFact struct {
	Name string `json:"name" yaml:"name"`
	// The name of the type the method is declared in, empty for anonymous classes
	Class       string   `json:"class" yaml:"class"`
	Modifiers   []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Annotations []string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Line        int      `json:"line" yaml:"line"`
}

// Annotated reports whether the method carries the given annotation, without the `@`
func (m MethodFact) Annotated(annotation string) bool {
	return slices.Contains(m.Annotations, annotation)
}

func (m MethodFact) String() string {
	if m.Class == "" {
		return fmt.Sprintf("<anonymous>.%s", m.Name)
	}
	return fmt.Sprintf("%s.%s", m.Class, m.Name)
}

// CallFact describes a single method invocation
type CallFact struct {
	Callee string `json:"callee" yaml:"callee"`
	// The receiver expression, empty for an unqualified call
	Receiver string `json:"receiver,omitempty" yaml:"receiver,omitempty"`
	// Every method or constructor the call is nested in, outermost first
	Methods []string `json:"methods" yaml:"methods"`
	Line    int      `json:"line" yaml:"line"`
}

// Method is the name of the method that most closely encloses the call
func (c CallFact) Method() string {
	if len(c.Methods) == 0 {
		return ""
	}
	return c.Methods[len(c.Methods)-1]
}

// Within reports whether the call occurs anywhere inside a method of the given
// name, including inside lambdas and local or anonymous classes declared there
func (c CallFact) Within(method string) bool {
	return slices.Contains(c.Methods, method)
}

func (c CallFact) String() string {
	callee := c.Callee
	if c.Receiver != "" {
		callee = c.Receiver + "." + callee
	}
	if len(c.Methods) == 0 {
		return callee + "()"
	}
	return fmt.Sprintf("%s() in %s", callee, strings.Join(c.Methods, " > "))
}
