package visitor

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"code-reviewer/src/model"
	"code-reviewer/src/service/pytree"
)

// DocstringVisitor reports modules, classes, and functions whose body does
// not start with a string-literal expression.
type DocstringVisitor struct {
	issues []model.Issue
}

// NewDocstringVisitor creates a docstring visitor for one file
func NewDocstringVisitor() *DocstringVisitor {
	return &DocstringVisitor{}
}

// Name returns the visitor name
func (v *DocstringVisitor) Name() string {
	return "docstring"
}

// Analyze checks the module and every definition in one pass
func (v *DocstringVisitor) Analyze(f *pytree.File) ([]model.Issue, error) {
	root := f.Root()
	if !hasDocstring(root) {
		v.issues = append(v.issues, model.Issue{
			Line:     1,
			Severity: model.SeverityInfo,
			Kind:     model.KindMissingDocstring,
			Message:  "Module is missing a docstring",
		})
	}

	pytree.Walk(root, func(n *tree_sitter.Node) bool {
		var what string
		switch n.Kind() {
		case kindFunctionDef:
			what = "Function"
		case kindClassDef:
			what = "Class"
		default:
			return true
		}

		body := n.ChildByFieldName("body")
		if body != nil && !hasDocstring(body) {
			name := f.Text(n.ChildByFieldName("name"))
			v.issues = append(v.issues, model.Issue{
				Line:     pytree.Line(n),
				Severity: model.SeverityInfo,
				Kind:     model.KindMissingDocstring,
				Message:  fmt.Sprintf("%s '%s' is missing a docstring", what, name),
			})
		}
		return true
	})

	return v.issues, nil
}
