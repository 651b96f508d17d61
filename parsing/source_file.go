package parsing

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// SourceFile holds a single Java file and the syntax tree parsed from it. The
// tree is owned by the SourceFile and released with Close
type SourceFile struct {
	Name   string
	Source []byte
	Tree   *sitter.Tree
	Ast    *sitter.Node
}

func (file SourceFile) String() string {
	return fmt.Sprintf("SourceFile { Name: %s, Ast: %v }", file.Name, file.Ast)
}

// Load reads the file at the given path, returning a NotFoundError if nothing
// readable is there
func Load(path string) (*SourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &NotFoundError{Path: path, Err: fmt.Errorf("%s is not a regular file", path)}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}

	return &SourceFile{Name: path, Source: source}, nil
}

// Parse loads and parses the file at the given path in one step
func Parse(path string) (*SourceFile, error) {
	file, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := file.ParseAST(); err != nil {
		return nil, err
	}
	return file, nil
}

// ParseAST builds the syntax tree for the file's source. Any syntax error that
// tree-sitter recovered from is still reported as a ParseError, since the
// resulting tree no longer describes what was written
func (file *SourceFile) ParseAST() error {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, file.Source)
	if err != nil {
		return &ParseError{Path: file.Name, Err: errors.Wrap(err, "running tree-sitter")}
	}

	root := tree.RootNode()
	if root.HasError() {
		bad := firstErrorNode(root)
		tree.Close()

		parseErr := &ParseError{Path: file.Name, Err: errors.New("source is not valid Java")}
		if bad != nil {
			parseErr.Line = int(bad.StartPoint().Row) + 1
			parseErr.Column = int(bad.StartPoint().Column) + 1
		}
		log.WithFields(log.Fields{
			"file":   file.Name,
			"line":   parseErr.Line,
			"column": parseErr.Column,
		}).Debug("Syntax error in source")
		return parseErr
	}

	file.Tree = tree
	file.Ast = root
	return nil
}

// Close releases the parsed tree. The file cannot be inspected afterwards
func (file *SourceFile) Close() {
	if file.Tree != nil {
		file.Tree.Close()
	}
	file.Tree = nil
	file.Ast = nil
}

// firstErrorNode finds the earliest ERROR or MISSING node in the tree
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}
		if bad := firstErrorNode(child); bad != nil {
			return bad
		}
	}
	return nil
}
