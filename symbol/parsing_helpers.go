package symbol

import (
	"github.com/NickyBoy89/javagrader/keywords"
	"github.com/NickyBoy89/javagrader/nodeutil"
	sitter "github.com/smacker/go-tree-sitter"
)

// parseModifiers returns the modifier keywords and annotation names attached to
// a declaration, in the order they were written
func parseModifiers(declaration *sitter.Node, source []byte) (modifiers []string, annotations []string) {
	mods := nodeutil.FirstOfType(declaration, "modifiers")
	if mods == nil {
		return nil, nil
	}
	for _, modifier := range nodeutil.UnnamedChildren(mods) {
		switch modifier.Type() {
		case "marker_annotation", "annotation":
			annotations = append(annotations, nodeutil.SimpleTypeName(modifier.ChildByFieldName("name"), source))
		default:
			if keywords.IsModifier(modifier.Type()) {
				modifiers = append(modifiers, modifier.Type())
			}
		}
	}
	return modifiers, annotations
}

// parentName finds the simple name of the first type a declaration extends
func parentName(declaration *sitter.Node, source []byte) string {
	switch declaration.Type() {
	case "class_declaration":
		return nodeutil.SimpleTypeName(declaration.ChildByFieldName("superclass"), source)
	case "interface_declaration":
		return nodeutil.SimpleTypeName(nodeutil.FirstOfType(declaration, "extends_interfaces"), source)
	}
	return ""
}
