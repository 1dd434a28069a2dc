package visitor

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"code-reviewer/src/model"
	"code-reviewer/src/service/pytree"
)

// ComplexityVisitor computes an approximate cyclomatic-complexity score per
// function and per file. It is a metrics producer and emits no issues.
type ComplexityVisitor struct {
	functions      []model.FunctionComplexity
	fileComplexity int
	classesCount   int
}

// ComplexityMetrics is the summary copied out of the visitor after a run.
type ComplexityMetrics struct {
	Functions             []model.FunctionComplexity
	FileComplexity        int
	FunctionsCount        int
	ClassesCount          int
	AvgFunctionComplexity float64
	MaxFunctionComplexity int
}

// NewComplexityVisitor creates a complexity visitor for one file
func NewComplexityVisitor() *ComplexityVisitor {
	return &ComplexityVisitor{}
}

// Name returns the visitor name
func (v *ComplexityVisitor) Name() string {
	return "complexity"
}

// Analyze traverses the tree once, scoring every function and method
// definition it encounters. Nested definitions are scored as entries of
// their own; their complexity is not added to the enclosing function.
func (v *ComplexityVisitor) Analyze(f *pytree.File) ([]model.Issue, error) {
	pytree.Walk(f.Root(), func(n *tree_sitter.Node) bool {
		switch n.Kind() {
		case kindClassDef:
			v.classesCount++
		case kindFunctionDef:
			score := functionComplexity(n)
			name := f.Text(n.ChildByFieldName("name"))
			v.functions = append(v.functions, model.FunctionComplexity{
				Name:  name,
				Line:  pytree.Line(n),
				Score: score,
			})
			v.fileComplexity += score
		}
		return true
	})
	return nil, nil
}

// Metrics finalizes and returns the summary numbers. A file with zero
// functions yields all-zero metrics, not an error.
func (v *ComplexityVisitor) Metrics() ComplexityMetrics {
	m := ComplexityMetrics{
		Functions:      v.functions,
		FileComplexity: v.fileComplexity,
		FunctionsCount: len(v.functions),
		ClassesCount:   v.classesCount,
	}
	if len(v.functions) == 0 {
		return m
	}

	sum := 0
	for _, fn := range v.functions {
		sum += fn.Score
		if fn.Score > m.MaxFunctionComplexity {
			m.MaxFunctionComplexity = fn.Score
		}
	}
	m.AvgFunctionComplexity = float64(sum) / float64(len(v.functions))
	return m
}

// functionComplexity scores one function definition: 1 for the baseline
// path, +1 per conditional branch or exception handler, and +1 per extra
// operand in a short-circuit boolean chain. The walk stops at nested
// function and class definitions.
func functionComplexity(def *tree_sitter.Node) int {
	complexity := 1

	var count func(n *tree_sitter.Node)
	count = func(n *tree_sitter.Node) {
		switch n.Kind() {
		case kindIf, kindElif, kindWhile, kindFor:
			complexity++
		case kindExceptClause:
			// One unit per handler, not per try.
			complexity++
		case kindBoolOp:
			// The grammar nests and/or chains as binary nodes, so each
			// boolean_operator is one extra operand.
			complexity++
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			child := n.Child(i)
			if isDefinition(child.Kind()) {
				continue
			}
			count(child)
		}
	}

	for i := uint(0); i < def.ChildCount(); i++ {
		child := def.Child(i)
		if isDefinition(child.Kind()) {
			continue
		}
		count(child)
	}

	return complexity
}
