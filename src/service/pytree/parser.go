// Package pytree turns Python source text into a traversable syntax tree.
package pytree

import (
	"bytes"
	"fmt"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

var (
	languageOnce sync.Once
	language     *tree_sitter.Language
)

// pythonLanguage returns the compiled-in Python grammar, loading it once.
func pythonLanguage() *tree_sitter.Language {
	languageOnce.Do(func() {
		language = tree_sitter.NewLanguage(tree_sitter_python.Language())
	})
	return language
}

// ParseError reports source text that could not be turned into a usable tree.
type ParseError struct {
	Path string
	Line int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d", e.Path, e.Line)
	}
	return fmt.Sprintf("parse error in %s", e.Path)
}

// File holds one parsed source file. The underlying tree stays valid until
// Close is called, so a File must not outlive its analysis.
type File struct {
	Path   string
	Source []byte
	tree   *tree_sitter.Tree
}

// Parse parses Python source into a File. Trees containing syntax errors are
// rejected with a *ParseError rather than handed to the visitors.
func Parse(path string, src []byte) (*File, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(pythonLanguage()); err != nil {
		return nil, fmt.Errorf("loading python grammar: %w", err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, &ParseError{Path: path}
	}

	root := tree.RootNode()
	if root.HasError() {
		line := firstErrorLine(root)
		tree.Close()
		return nil, &ParseError{Path: path, Line: line}
	}

	return &File{Path: path, Source: src, tree: tree}, nil
}

// Close releases the underlying tree. The File must not be used afterwards.
func (f *File) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// Root returns the module node of the parsed file.
func (f *File) Root() *tree_sitter.Node {
	return f.tree.RootNode()
}

// Text returns the source text covered by a node.
func (f *File) Text(n *tree_sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(f.Source)
}

// LineCount returns the number of lines in the source file.
func (f *File) LineCount() int {
	if len(f.Source) == 0 {
		return 0
	}
	return bytes.Count(f.Source, []byte{'\n'}) + 1
}

// Line returns the 1-based source line a node starts on.
func Line(n *tree_sitter.Node) int {
	return int(n.StartPosition().Row) + 1
}

// Walk traverses the subtree rooted at n in pre-order. The callback returns
// false to skip a node's children.
func Walk(n *tree_sitter.Node, fn func(n *tree_sitter.Node) bool) {
	if !fn(n) {
		return
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		Walk(n.Child(i), fn)
	}
}

// NamedChildren returns the named children of a node.
func NamedChildren(n *tree_sitter.Node) []*tree_sitter.Node {
	count := n.NamedChildCount()
	children := make([]*tree_sitter.Node, 0, count)
	for i := uint(0); i < count; i++ {
		children = append(children, n.NamedChild(i))
	}
	return children
}

// firstErrorLine finds the line of the first ERROR or MISSING node.
func firstErrorLine(root *tree_sitter.Node) int {
	line := 0
	Walk(root, func(n *tree_sitter.Node) bool {
		if line > 0 {
			return false
		}
		if n.IsError() || n.IsMissing() {
			line = Line(n)
			return false
		}
		return n.HasError()
	})
	return line
}
