package symbol

import (
	"github.com/NickyBoy89/javagrader/nodeutil"
	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/exp/slices"
)

var declarationKinds = map[string]string{
	"class_declaration":           KindClass,
	"interface_declaration":       KindInterface,
	"enum_declaration":            KindEnum,
	"record_declaration":          KindRecord,
	"annotation_type_declaration": KindAnnotation,
}

// enclosing is the declaration context that a node is visited in
type enclosing struct {
	// Nearest enclosing type, empty inside an anonymous class body
	class string
	// Every enclosing method or constructor, outermost first
	methods []string
}

func (e enclosing) inMethod(name string) enclosing {
	return enclosing{class: e.class, methods: append(slices.Clip(e.methods), name)}
}

// ExtractFacts walks the tree of a single source file and collects the types,
// methods and calls declared in it. The tree is only read
func ExtractFacts(name string, root *sitter.Node, source []byte) *FileScope {
	nodeutil.AssertTypeIs(root, "program")

	scope := &FileScope{
		Name:    name,
		Classes: []*ClassFact{},
		Methods: []*MethodFact{},
		Calls:   []*CallFact{},
	}
	for _, pack := range nodeutil.FindAll(root, "package_declaration") {
		scope.Package = qualifiedName(pack, source)
	}
	for _, imp := range nodeutil.FindAll(root, "import_declaration") {
		path := qualifiedName(imp, source)
		if nodeutil.FirstOfType(imp, "asterisk") != nil {
			path += ".*"
		}
		scope.Imports = append(scope.Imports, path)
	}

	scope.walk(root, source, enclosing{})
	return scope
}

// qualifiedName returns the dotted name of a package or import declaration
func qualifiedName(declaration *sitter.Node, source []byte) string {
	for _, child := range nodeutil.Children(declaration) {
		if child.Type() == "identifier" || child.Type() == "scoped_identifier" {
			return child.Content(source)
		}
	}
	return ""
}

func (fs *FileScope) walk(node *sitter.Node, source []byte, ctx enclosing) {
	switch node.Type() {
	case "package_declaration", "import_declaration":
		// Collected by ExtractFacts
		return
	case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration", "annotation_type_declaration":
		modifiers, _ := parseModifiers(node, source)
		class := &ClassFact{
			Name:      node.ChildByFieldName("name").Content(source),
			Parent:    parentName(node, source),
			Kind:      declarationKinds[node.Type()],
			Modifiers: modifiers,
			Line:      nodeutil.Line(node),
		}
		fs.Classes = append(fs.Classes, class)

		if body := node.ChildByFieldName("body"); body != nil {
			fs.walk(body, source, enclosing{class: class.Name, methods: ctx.methods})
		}
		return
	case "method_declaration":
		modifiers, annotations := parseModifiers(node, source)
		method := &MethodFact{
			Name:        node.ChildByFieldName("name").Content(source),
			Class:       ctx.class,
			Modifiers:   modifiers,
			Annotations: annotations,
			Line:        nodeutil.Line(node),
		}
		fs.Methods = append(fs.Methods, method)

		// Abstract and interface methods have no body
		if body := node.ChildByFieldName("body"); body != nil {
			fs.walk(body, source, ctx.inMethod(method.Name))
		}
		return
	case "constructor_declaration", "compact_constructor_declaration":
		if body := node.ChildByFieldName("body"); body != nil {
			fs.walk(body, source, ctx.inMethod(node.ChildByFieldName("name").Content(source)))
		}
		return
	case "method_invocation":
		call := &CallFact{
			Callee:  node.ChildByFieldName("name").Content(source),
			Methods: slices.Clone(ctx.methods),
			Line:    nodeutil.Line(node),
		}
		if object := node.ChildByFieldName("object"); object != nil {
			call.Receiver = object.Content(source)
		}
		fs.Calls = append(fs.Calls, call)
	case "object_creation_expression":
		// An anonymous class body belongs to no named type
		for _, child := range nodeutil.Children(node) {
			if child.Type() == "class_body" {
				fs.walk(child, source, enclosing{methods: ctx.methods})
			} else {
				fs.walk(child, source, ctx)
			}
		}
		return
	}

	for _, child := range nodeutil.Children(node) {
		fs.walk(child, source, ctx)
	}
}
