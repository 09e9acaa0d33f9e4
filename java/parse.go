package java

import (
	"errors"
	"fmt"
	"os"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

var errNoTree = errors.New("parser returned no tree")

// ParseJava parses Java source code and returns a tree-sitter tree.
// The caller owns the tree and must close it.
func ParseJava(source []byte) (*tree_sitter.Tree, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_java.Language())); err != nil {
		return nil, fmt.Errorf("loading java grammar: %w", err)
	}
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, errNoTree
	}
	return tree, nil
}

// ParseFile reads and parses the Java file at path.
func ParseFile(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, source)
}

// Parse builds the declaration model of a Java compilation unit. The syntax
// tree is released before returning; the model only holds copies.
func Parse(path string, source []byte) (*File, error) {
	tree, err := ParseJava(source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	f := &File{Path: path, Source: source}
	collectClasses(root, source, &f.Classes)
	if root.HasError() {
		collectSyntaxErrors(root, f)
		if len(f.Errors) == 0 {
			f.Errors = append(f.Errors, SyntaxError{Path: path, Position: positionOf(root), Message: "malformed compilation unit"})
		}
	}
	return f, nil
}

// IterateChildren iterates over all children of a node and calls fn for each
func IterateChildren(node *tree_sitter.Node, fn func(child *tree_sitter.Node)) {
	cursor := node.Walk()
	defer cursor.Close()
	children := node.Children(cursor)
	for _, child := range children {
		fn(&child)
	}
}

// IterateChildrenWhile iterates over all children of a node while fn returns true
func IterateChildrenWhile(node *tree_sitter.Node, fn func(child *tree_sitter.Node) bool) {
	cursor := node.Walk()
	defer cursor.Close()
	children := node.Children(cursor)
	for _, child := range children {
		if !fn(&child) {
			return
		}
	}
}

func spanOf(node *tree_sitter.Node) Span {
	return Span{Start: node.StartByte(), End: node.EndByte()}
}

// positionOf converts the 0-based tree-sitter point to a 1-based position.
func positionOf(node *tree_sitter.Node) Position {
	pos := node.StartPosition()
	return Position{Row: pos.Row + 1, Column: pos.Column + 1}
}

func collectSyntaxErrors(node *tree_sitter.Node, f *File) {
	IterateChildren(node, func(child *tree_sitter.Node) {
		switch {
		case child.IsMissing():
			f.Errors = append(f.Errors, SyntaxError{
				Path:     f.Path,
				Position: positionOf(child),
				Message:  "missing " + child.Kind(),
			})
		case child.IsError():
			f.Errors = append(f.Errors, SyntaxError{
				Path:     f.Path,
				Position: positionOf(child),
				Message:  fmt.Sprintf("unexpected %q", truncate(child.Utf8Text(f.Source), 40)),
			})
		case child.HasError():
			collectSyntaxErrors(child, f)
		}
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
