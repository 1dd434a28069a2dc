package visitor

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"code-reviewer/src/model"
	"code-reviewer/src/service/pytree"
)

// ErrorHandlingVisitor flags functions and IO call sites that lack exception
// handling, and handlers that swallow everything.
type ErrorHandlingVisitor struct {
	issues   []model.Issue
	tryDepth int
}

// ioAttrNames are attribute calls treated as IO operations
var ioAttrNames = map[string]bool{
	"open":  true,
	"read":  true,
	"write": true,
	"close": true,
}

// NewErrorHandlingVisitor creates an error-handling visitor for one file
func NewErrorHandlingVisitor() *ErrorHandlingVisitor {
	return &ErrorHandlingVisitor{}
}

// Name returns the visitor name
func (v *ErrorHandlingVisitor) Name() string {
	return "error_handling"
}

// Analyze runs all three rules during one traversal
func (v *ErrorHandlingVisitor) Analyze(f *pytree.File) ([]model.Issue, error) {
	v.visit(f, f.Root())
	return v.issues, nil
}

func (v *ErrorHandlingVisitor) visit(f *pytree.File, n *tree_sitter.Node) {
	switch n.Kind() {
	case kindFunctionDef:
		v.checkFunction(f, n)
	case kindTry:
		v.checkHandlers(f, n)
		v.tryDepth++
		for i := uint(0); i < n.ChildCount(); i++ {
			v.visit(f, n.Child(i))
		}
		v.tryDepth--
		return
	case kindCall:
		v.checkIOCall(f, n)
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		v.visit(f, n.Child(i))
	}
}

// checkFunction flags multi-statement functions containing no try block.
// Single-statement bodies (trivial getters, delegations) are left alone.
func (v *ErrorHandlingVisitor) checkFunction(f *pytree.File, def *tree_sitter.Node) {
	body := def.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() <= 1 {
		return
	}

	hasTry := false
	pytree.Walk(body, func(n *tree_sitter.Node) bool {
		if hasTry {
			return false
		}
		if n.Kind() == kindTry {
			hasTry = true
			return false
		}
		// Nested definitions handle their own errors.
		return !isDefinition(n.Kind())
	})

	if !hasTry {
		name := f.Text(def.ChildByFieldName("name"))
		v.issues = append(v.issues, model.Issue{
			Line:     pytree.Line(def),
			Severity: model.SeverityWarning,
			Kind:     model.KindMissingErrorHandling,
			Message:  fmt.Sprintf("Function '%s' has no error handling", name),
		})
	}
}

// checkHandlers flags bare except clauses on a try statement
func (v *ErrorHandlingVisitor) checkHandlers(f *pytree.File, try *tree_sitter.Node) {
	for _, clause := range pytree.NamedChildren(try) {
		if clause.Kind() != kindExceptClause {
			continue
		}
		// A bare handler has only its block as a named child.
		if clause.NamedChildCount() == 1 {
			v.issues = append(v.issues, model.Issue{
				Line:     pytree.Line(clause),
				Severity: model.SeverityWarning,
				Kind:     model.KindBareExcept,
				Message:  "Using bare 'except:' is not recommended for production code",
			})
		}
	}
}

// checkIOCall flags file operations outside any try block
func (v *ErrorHandlingVisitor) checkIOCall(f *pytree.File, call *tree_sitter.Node) {
	if v.tryDepth > 0 {
		return
	}

	name, attr := callee(f, call)
	operation := ""
	switch {
	case name == "open":
		operation = "open"
	case ioAttrNames[attr]:
		operation = f.Text(call.ChildByFieldName("function"))
	default:
		return
	}

	v.issues = append(v.issues, model.Issue{
		Line:     pytree.Line(call),
		Severity: model.SeverityWarning,
		Kind:     model.KindUnhandledIO,
		Message:  fmt.Sprintf("IO operation '%s' without error handling", operation),
	})
}
