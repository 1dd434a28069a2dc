package visitor

import (
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"code-reviewer/src/model"
	"code-reviewer/src/service/pytree"
)

// ScalabilityVisitor flags syntactic patterns correlated with scaling or
// resource risk. Findings land in three separate buckets which the file
// analyzer merges into the unified issue sequence.
type ScalabilityVisitor struct {
	hardcodedConfigs     []model.Issue
	resourceIssues       []model.Issue
	potentialBottlenecks []model.Issue

	// withDepth counts enclosing with-statements so that multiply-nested
	// scoped blocks restore correctly on exit.
	withDepth int

	largeLoopThreshold int
}

// NewScalabilityVisitor creates a scalability visitor for one file.
// largeLoopThreshold is the smallest literal range bound worth flagging.
func NewScalabilityVisitor(largeLoopThreshold int) *ScalabilityVisitor {
	if largeLoopThreshold <= 0 {
		largeLoopThreshold = 1000
	}
	return &ScalabilityVisitor{largeLoopThreshold: largeLoopThreshold}
}

// Name returns the visitor name
func (v *ScalabilityVisitor) Name() string {
	return "scalability"
}

// Analyze runs all detection rules during one pre-order traversal
func (v *ScalabilityVisitor) Analyze(f *pytree.File) ([]model.Issue, error) {
	v.visit(f, f.Root())

	issues := make([]model.Issue, 0,
		len(v.hardcodedConfigs)+len(v.resourceIssues)+len(v.potentialBottlenecks))
	issues = append(issues, v.hardcodedConfigs...)
	issues = append(issues, v.resourceIssues...)
	issues = append(issues, v.potentialBottlenecks...)
	return issues, nil
}

func (v *ScalabilityVisitor) visit(f *pytree.File, n *tree_sitter.Node) {
	switch n.Kind() {
	case kindWith:
		v.withDepth++
		for i := uint(0); i < n.ChildCount(); i++ {
			v.visit(f, n.Child(i))
		}
		v.withDepth--
		return
	case kindAssignment:
		v.checkHardcodedConfig(f, n)
	case kindCall:
		v.checkCall(f, n)
	case kindFor:
		v.checkLargeLoop(f, n)
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		v.visit(f, n.Child(i))
	}
}

// checkHardcodedConfig flags all-upper-case assignments of plain literals
// outside any scoped-resource block.
func (v *ScalabilityVisitor) checkHardcodedConfig(f *pytree.File, n *tree_sitter.Node) {
	if v.withDepth > 0 {
		return
	}

	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if left == nil || right == nil {
		return
	}
	if left.Kind() != kindIdentifier || !isLiteral(right.Kind()) {
		return
	}

	name := f.Text(left)
	if !isConstantName(name) {
		return
	}

	v.hardcodedConfigs = append(v.hardcodedConfigs, model.Issue{
		Line:     pytree.Line(n),
		Severity: model.SeverityInfo,
		Kind:     model.KindHardcodedConfig,
		Message:  fmt.Sprintf("Hardcoded configuration value '%s'", name),
	})
}

// checkCall covers the unbounded-query and resource-without-scope rules
func (v *ScalabilityVisitor) checkCall(f *pytree.File, n *tree_sitter.Node) {
	name, attr := callee(f, n)

	if name == "open" && v.withDepth == 0 {
		v.resourceIssues = append(v.resourceIssues, model.Issue{
			Line:     pytree.Line(n),
			Severity: model.SeverityInfo,
			Kind:     model.KindResourceLeakRisk,
			Message:  "File opened outside a scoped context and might not be released",
		})
		return
	}

	if attr != "execute" && attr != "executemany" {
		return
	}
	for _, arg := range callArguments(n) {
		if arg.Kind() != kindString {
			continue
		}
		query := strings.ToUpper(f.Text(arg))
		if strings.Contains(query, "SELECT") && !strings.Contains(query, "LIMIT") {
			v.potentialBottlenecks = append(v.potentialBottlenecks, model.Issue{
				Line:     pytree.Line(n),
				Severity: model.SeverityInfo,
				Kind:     model.KindUnboundedQuery,
				Message:  "SQL query without LIMIT clause",
			})
			return
		}
	}
}

// checkLargeLoop flags bounded iterations over a large literal range
func (v *ScalabilityVisitor) checkLargeLoop(f *pytree.File, n *tree_sitter.Node) {
	iter := n.ChildByFieldName("right")
	if iter == nil || iter.Kind() != kindCall {
		return
	}
	name, _ := callee(f, iter)
	if name != "range" {
		return
	}

	args := callArguments(iter)
	if len(args) != 1 || args[0].Kind() != kindInteger {
		return
	}
	bound, ok := intLiteralValue(f.Text(args[0]))
	if !ok || bound < v.largeLoopThreshold {
		return
	}

	v.potentialBottlenecks = append(v.potentialBottlenecks, model.Issue{
		Line:     pytree.Line(n),
		Severity: model.SeverityInfo,
		Kind:     model.KindLargeLoop,
		Message:  fmt.Sprintf("Large range loop (n=%d)", bound),
	})
}
