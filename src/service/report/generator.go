// Package report renders a CodebaseReport as JSON, markdown, or plain text.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"code-reviewer/src/config"
	"code-reviewer/src/model"
	"code-reviewer/src/util"
)

// Generator generates reports in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate renders a report in the specified format
func (g *Generator) Generate(report *model.CodebaseReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d files)", format, len(report.Files))
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report), nil
	case "text", "txt":
		return g.generateText(report), nil
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(report *model.CodebaseReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(report *model.CodebaseReport) string {
	var sb strings.Builder
	s := report.Summary

	sb.WriteString("# Code Quality Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**Target:** %s\n", report.RootDir))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	// Executive summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("This analysis examined **%d** files and found issues in **%d** files, "+
		"with a total of **%d** issues identified.\n\n", s.TotalFiles, s.FilesWithIssues, s.TotalIssues))
	sb.WriteString(fmt.Sprintf("**Overall Codebase Grade: %s** (%.1f/10)\n\n", s.Average.Grade, s.Average.Overall))

	sb.WriteString("### Key Metrics\n\n")
	sb.WriteString("| Metric | Score (0-10) |\n")
	sb.WriteString("|--------|-------------|\n")
	sb.WriteString(fmt.Sprintf("| Overall Quality | %.1f |\n", s.Average.Overall))
	sb.WriteString(fmt.Sprintf("| Error Handling | %.1f |\n", s.Average.ErrorHandling))
	sb.WriteString(fmt.Sprintf("| Maintainability | %.1f |\n", s.Average.Maintainability))
	sb.WriteString(fmt.Sprintf("| Scalability | %.1f |\n", s.Average.Scalability))
	sb.WriteString(fmt.Sprintf("| Security | %.1f |\n\n", s.Average.Security))

	// Severity distribution
	sb.WriteString("### Issues by Severity\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, sev := range []model.Severity{model.SeverityError, model.SeverityWarning, model.SeverityInfo} {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", sev, s.BySeverity[sev]))
	}
	sb.WriteString("\n")

	// Issue kinds
	sb.WriteString("### Issues by Kind\n\n")
	sb.WriteString("| Kind | Count |\n")
	sb.WriteString("|------|-------|\n")
	for _, kc := range kindsByCount(s.ByKind) {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", kc.kind, kc.count))
	}
	sb.WriteString("\n")

	// File ratings
	paths := report.SortedPaths()
	sb.WriteString("## File Ratings\n\n")
	sb.WriteString("| File | Grade | Overall | Error | Maintainability | Scalability | Security | Issues |\n")
	sb.WriteString("|------|-------|---------|-------|-----------------|-------------|----------|--------|\n")
	for _, path := range paths {
		fr := report.Files[path]
		if fr.Failed {
			continue
		}
		r := report.Ratings[path]
		sb.WriteString(fmt.Sprintf("| %s | %s | %.1f | %.1f | %.1f | %.1f | %.1f | %d |\n",
			shortenPath(path, 50), r.Grade, r.Overall, r.ErrorHandling,
			r.Maintainability, r.Scalability, r.Security, len(fr.Issues)))
	}
	sb.WriteString("\n")

	// Failures are always shown, never silently dropped.
	if len(s.FailedFiles) > 0 {
		sb.WriteString("## Failed Files\n\n")
		for _, path := range s.FailedFiles {
			fr := report.Files[path]
			reason := ""
			if len(fr.Issues) > 0 {
				reason = fr.Issues[0].Message
			}
			sb.WriteString(fmt.Sprintf("- `%s`: %s\n", path, reason))
		}
		sb.WriteString("\n")
	}

	if len(s.Recommendations) > 0 {
		sb.WriteString("## Key Recommendations\n\n")
		for i, rec := range s.Recommendations {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (g *Generator) generateText(report *model.CodebaseReport) string {
	var sb strings.Builder
	s := report.Summary
	rule := strings.Repeat("-", 80)

	sb.WriteString("Code Quality Analysis Summary Report\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	sb.WriteString(fmt.Sprintf("Total files analyzed: %d\n", s.TotalFiles))
	sb.WriteString(fmt.Sprintf("Files with issues: %d\n", s.FilesWithIssues))
	sb.WriteString(fmt.Sprintf("Total issues found: %d\n", s.TotalIssues))
	sb.WriteString(fmt.Sprintf("Overall grade: %s (%.1f/10)\n\n", s.Average.Grade, s.Average.Overall))

	sb.WriteString("Issues by severity:\n" + rule + "\n")
	for _, sev := range []model.Severity{model.SeverityError, model.SeverityWarning, model.SeverityInfo} {
		sb.WriteString(fmt.Sprintf("%s: %d\n", sev, s.BySeverity[sev]))
	}
	sb.WriteString("\n")

	sb.WriteString("Issues by kind:\n" + rule + "\n")
	for _, kc := range kindsByCount(s.ByKind) {
		sb.WriteString(fmt.Sprintf("%s: %d\n", kc.kind, kc.count))
	}
	sb.WriteString("\n")

	sb.WriteString("File ratings:\n" + rule + "\n")
	sb.WriteString(fmt.Sprintf("%-40s %-5s %-8s %-8s %-8s %-8s %-8s\n",
		"File", "Grade", "Overall", "Error", "Maint.", "Scale.", "Security"))
	sb.WriteString(rule + "\n")
	for _, path := range report.SortedPaths() {
		if report.Files[path].Failed {
			continue
		}
		r := report.Ratings[path]
		sb.WriteString(fmt.Sprintf("%-40s %-5s %-8.1f %-8.1f %-8.1f %-8.1f %-8.1f\n",
			shortenPath(path, 39), r.Grade, r.Overall, r.ErrorHandling,
			r.Maintainability, r.Scalability, r.Security))
	}

	if len(s.FailedFiles) > 0 {
		sb.WriteString("\nFailed files:\n" + rule + "\n")
		for _, path := range s.FailedFiles {
			sb.WriteString(path + "\n")
		}
	}

	if len(s.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n" + rule + "\n")
		for _, rec := range s.Recommendations {
			sb.WriteString("- " + rec + "\n")
		}
	}

	return sb.String()
}

type kindCount struct {
	kind  model.Kind
	count int
}

// kindsByCount returns kind counters ordered by count descending, then by
// kind name for a deterministic report.
func kindsByCount(byKind map[model.Kind]int) []kindCount {
	out := make([]kindCount, 0, len(byKind))
	for kind, count := range byKind {
		out = append(out, kindCount{kind, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].kind < out[j].kind
	})
	return out
}

// shortenPath trims long paths to fit report tables
func shortenPath(path string, maxLength int) string {
	if len(path) <= maxLength {
		return path
	}
	parts := strings.Split(path, "/")
	if len(parts) <= 2 {
		return "..." + path[len(path)-maxLength+3:]
	}
	short := parts[0] + "/.../" + parts[len(parts)-1]
	if len(short) > maxLength {
		return "..." + path[len(path)-maxLength+3:]
	}
	return short
}
