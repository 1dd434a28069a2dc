package visitor

import (
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"code-reviewer/src/model"
	"code-reviewer/src/service/pytree"
)

// ImportUsageVisitor reports module-scope imports whose bound name is never
// referenced anywhere else in the file.
type ImportUsageVisitor struct {
	imports []importedName
	used    map[string]bool
}

type importedName struct {
	name string
	line int
}

// NewImportUsageVisitor creates an import-usage visitor for one file
func NewImportUsageVisitor() *ImportUsageVisitor {
	return &ImportUsageVisitor{used: make(map[string]bool)}
}

// Name returns the visitor name
func (v *ImportUsageVisitor) Name() string {
	return "import_usage"
}

// Analyze collects imported names and identifier references in one pass,
// then reports each import absent from the usage set exactly once.
func (v *ImportUsageVisitor) Analyze(f *pytree.File) ([]model.Issue, error) {
	v.collect(f, f.Root())

	var issues []model.Issue
	for _, imp := range v.imports {
		if v.used[imp.name] {
			continue
		}
		issues = append(issues, model.Issue{
			Line:     imp.line,
			Severity: model.SeverityInfo,
			Kind:     model.KindUnusedImport,
			Message:  fmt.Sprintf("Import '%s' might be unused", imp.name),
		})
	}
	return issues, nil
}

func (v *ImportUsageVisitor) collect(f *pytree.File, n *tree_sitter.Node) {
	switch n.Kind() {
	case kindImport:
		// Identifiers inside the statement bind names, they are not uses.
		for _, child := range pytree.NamedChildren(n) {
			v.recordBinding(f, child)
		}
		return
	case kindImportFrom:
		for _, child := range pytree.NamedChildren(n) {
			// The first dotted_name is the module being imported from.
			if mod := n.ChildByFieldName("module_name"); mod != nil && child.StartByte() == mod.StartByte() {
				continue
			}
			v.recordBinding(f, child)
		}
		return
	case kindAttribute:
		// Only the object position references a name; "x.os" is not a use
		// of an imported "os".
		if obj := n.ChildByFieldName("object"); obj != nil {
			v.collect(f, obj)
		}
		return
	case kindIdentifier:
		v.used[f.Text(n)] = true
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		v.collect(f, n.Child(i))
	}
}

// recordBinding records the name an import clause introduces: the alias if
// one is given, otherwise the first component of the dotted path.
func (v *ImportUsageVisitor) recordBinding(f *pytree.File, n *tree_sitter.Node) {
	switch n.Kind() {
	case kindDottedName, kindIdentifier:
		name := f.Text(n)
		if i := strings.IndexByte(name, '.'); i >= 0 {
			name = name[:i]
		}
		v.imports = append(v.imports, importedName{name: name, line: pytree.Line(n)})
	case kindAliasImport:
		if alias := n.ChildByFieldName("alias"); alias != nil {
			v.imports = append(v.imports, importedName{
				name: f.Text(alias),
				line: pytree.Line(n),
			})
		}
	case kindWildcard:
		// import * binds everything; nothing to track.
	}
}
