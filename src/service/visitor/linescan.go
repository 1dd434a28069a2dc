package visitor

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"code-reviewer/src/model"
	"code-reviewer/src/service/pytree"
)

// LineScanVisitor runs line-by-line pattern checks that need no tree at
// all: overlong lines, leftover TODO comments and print calls, and
// string-interpolated SQL.
type LineScanVisitor struct {
	maxLineLength int
}

var (
	todoPattern      = regexp.MustCompile(`#\s*TODO`)
	printPattern     = regexp.MustCompile(`\bprint\s*\(`)
	printDefPattern  = regexp.MustCompile(`def\s+print`)
	sqlFormatPattern = regexp.MustCompile(`execute\s*\(\s*["'].*%`)
	sqlFstrPattern   = regexp.MustCompile(`execute\s*\(\s*f["']`)
)

// NewLineScanVisitor creates a line-scan visitor for one file
func NewLineScanVisitor(maxLineLength int) *LineScanVisitor {
	if maxLineLength <= 0 {
		maxLineLength = 100
	}
	return &LineScanVisitor{maxLineLength: maxLineLength}
}

// Name returns the visitor name
func (v *LineScanVisitor) Name() string {
	return "line_scan"
}

// Analyze scans the raw source lines
func (v *LineScanVisitor) Analyze(f *pytree.File) ([]model.Issue, error) {
	var issues []model.Issue

	for i, line := range strings.Split(string(f.Source), "\n") {
		lineNo := i + 1

		if width := utf8.RuneCountInString(line); width > v.maxLineLength {
			issues = append(issues, model.Issue{
				Line:     lineNo,
				Severity: model.SeverityInfo,
				Kind:     model.KindLongLine,
				Message:  fmt.Sprintf("Line exceeds %d characters (%d)", v.maxLineLength, width),
			})
		}

		if todoPattern.MatchString(line) {
			issues = append(issues, model.Issue{
				Line:     lineNo,
				Severity: model.SeverityInfo,
				Kind:     model.KindTodoComment,
				Message:  "TODO comment found",
			})
		}

		if printPattern.MatchString(line) && !printDefPattern.MatchString(line) {
			issues = append(issues, model.Issue{
				Line:     lineNo,
				Severity: model.SeverityInfo,
				Kind:     model.KindPrintStatement,
				Message:  "Print statement should be replaced with proper logging",
			})
		}

		if sqlFormatPattern.MatchString(line) || sqlFstrPattern.MatchString(line) {
			issues = append(issues, model.Issue{
				Line:     lineNo,
				Severity: model.SeverityError,
				Kind:     model.KindSQLInjectionRisk,
				Message:  "Potential SQL injection vulnerability",
			})
		}
	}

	return issues, nil
}
