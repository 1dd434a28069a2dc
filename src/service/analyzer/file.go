// Package analyzer runs the visitor set over files and aggregates the
// results into per-file and codebase reports.
package analyzer

import (
	"fmt"
	"sort"

	"code-reviewer/src/config"
	"code-reviewer/src/model"
	"code-reviewer/src/service/pytree"
	"code-reviewer/src/service/visitor"
	"code-reviewer/src/util"
)

// FileAnalyzer runs every enabled visitor over one file's tree and merges
// the findings into a FileReport.
type FileAnalyzer struct {
	cfg *config.Config
}

// NewFileAnalyzer creates a file analyzer
func NewFileAnalyzer(cfg *config.Config) *FileAnalyzer {
	return &FileAnalyzer{cfg: cfg}
}

// Analyze parses one file and runs the full visitor set. Visitors are
// constructed fresh per call so no state leaks between files. Parse
// failures are returned as *pytree.ParseError for the caller to downgrade.
func (a *FileAnalyzer) Analyze(path string, src []byte) (*model.FileReport, error) {
	f, err := pytree.Parse(path, src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	report := &model.FileReport{
		Path:      path,
		LineCount: f.LineCount(),
	}

	var issues []model.Issue

	if a.cfg.Visitors.Complexity.Enabled {
		cv := visitor.NewComplexityVisitor()
		if _, err := runVisitor(cv, f); err != nil {
			util.Warn("Visitor %s skipped for %s: %v", cv.Name(), path, err)
		} else {
			m := cv.Metrics()
			report.Functions = m.Functions
			report.FileComplexity = m.FileComplexity
			report.FunctionsCount = m.FunctionsCount
			report.ClassesCount = m.ClassesCount
			report.AvgFunctionComplexity = m.AvgFunctionComplexity
			report.MaxFunctionComplexity = m.MaxFunctionComplexity
		}
	}

	for _, v := range a.issueVisitors() {
		found, err := runVisitor(v, f)
		if err != nil {
			// A single rule failing on malformed-but-parseable input never
			// aborts the run; the rule is skipped for this file.
			util.Warn("Visitor %s skipped for %s: %v", v.Name(), path, err)
			continue
		}
		issues = append(issues, found...)
	}

	// Stable by line, then by detection order.
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Line < issues[j].Line
	})
	report.Issues = issues

	return report, nil
}

// issueVisitors builds the enabled issue-emitting visitors for one file
func (a *FileAnalyzer) issueVisitors() []visitor.Visitor {
	cfg := a.cfg.Visitors
	var visitors []visitor.Visitor

	if cfg.Scalability.Enabled {
		visitors = append(visitors, visitor.NewScalabilityVisitor(cfg.Scalability.LargeLoopThreshold))
	}
	if cfg.ImportUsage.Enabled {
		visitors = append(visitors, visitor.NewImportUsageVisitor())
	}
	if cfg.Docstring.Enabled {
		visitors = append(visitors, visitor.NewDocstringVisitor())
	}
	if cfg.ErrorHandling.Enabled {
		visitors = append(visitors, visitor.NewErrorHandlingVisitor())
	}
	if cfg.LineScan.Enabled {
		visitors = append(visitors, visitor.NewLineScanVisitor(cfg.LineScan.MaxLineLength))
	}

	return visitors
}

// runVisitor guards one visitor run, converting a panic on unexpected tree
// shapes into an error.
func runVisitor(v visitor.Visitor, f *pytree.File) (issues []model.Issue, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("visitor %s panicked: %v", v.Name(), r)
		}
	}()
	return v.Analyze(f)
}
