// Package visitor contains the per-file metric visitors. Each visitor is
// constructed fresh for one file and accumulates findings in its own state
// during a single traversal.
package visitor

import (
	"strconv"
	"strings"
	"unicode"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"code-reviewer/src/model"
	"code-reviewer/src/service/pytree"
)

// Visitor is the interface all metric visitors implement. Analyze traverses
// the file once and returns the issues found. Visitors must not be reused
// across files.
type Visitor interface {
	Name() string
	Analyze(f *pytree.File) ([]model.Issue, error)
}

// Python grammar node kinds shared by the visitors.
const (
	kindModule       = "module"
	kindFunctionDef  = "function_definition"
	kindClassDef     = "class_definition"
	kindIf           = "if_statement"
	kindElif         = "elif_clause"
	kindWhile        = "while_statement"
	kindFor          = "for_statement"
	kindTry          = "try_statement"
	kindExceptClause = "except_clause"
	kindBoolOp       = "boolean_operator"
	kindWith         = "with_statement"
	kindAssignment   = "assignment"
	kindCall         = "call"
	kindAttribute    = "attribute"
	kindIdentifier   = "identifier"
	kindString       = "string"
	kindInteger      = "integer"
	kindExprStmt     = "expression_statement"
	kindImport       = "import_statement"
	kindImportFrom   = "import_from_statement"
	kindDottedName   = "dotted_name"
	kindAliasImport  = "aliased_import"
	kindWildcard     = "wildcard_import"
)

// isDefinition reports whether a node opens a new function or class scope.
func isDefinition(kind string) bool {
	return kind == kindFunctionDef || kind == kindClassDef
}

// isLiteral reports whether a node is a plain literal value: a string,
// number, list, or mapping.
func isLiteral(kind string) bool {
	switch kind {
	case kindString, "concatenated_string", kindInteger, "float", "list", "dictionary":
		return true
	}
	return false
}

// isConstantName reports whether an identifier follows the all-upper-case
// constant convention. Mirrors Python's str.isupper: at least one cased
// character and none of them lower-case.
func isConstantName(name string) bool {
	cased := false
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// intLiteralValue parses a Python integer literal, tolerating underscores.
// Returns ok=false for non-decimal forms.
func intLiteralValue(text string) (int, bool) {
	text = strings.ReplaceAll(text, "_", "")
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return v, true
}

// callee splits a call node into its bare function name (for open(...)) or
// its attribute name (for cursor.execute(...)). One of the two is empty.
func callee(f *pytree.File, call *tree_sitter.Node) (name, attr string) {
	fn := call.ChildByFieldName("function")
	if fn == nil {
		return "", ""
	}
	switch fn.Kind() {
	case kindIdentifier:
		return f.Text(fn), ""
	case kindAttribute:
		return "", f.Text(fn.ChildByFieldName("attribute"))
	}
	return "", ""
}

// callArguments returns the named argument nodes of a call.
func callArguments(call *tree_sitter.Node) []*tree_sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	return pytree.NamedChildren(args)
}

// hasDocstring reports whether the first statement in a body is a string
// literal expression.
func hasDocstring(body *tree_sitter.Node) bool {
	for _, stmt := range pytree.NamedChildren(body) {
		if stmt.Kind() == "comment" {
			continue
		}
		if stmt.Kind() != kindExprStmt {
			return false
		}
		children := pytree.NamedChildren(stmt)
		return len(children) == 1 && children[0].Kind() == kindString
	}
	return false
}
