package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"code-reviewer/src/config"
	"code-reviewer/src/model"
)

func sampleReport() *model.CodebaseReport {
	return &model.CodebaseReport{
		RootDir:     "demo",
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Files: map[string]*model.FileReport{
			"demo/app.py": {
				Path:      "demo/app.py",
				LineCount: 40,
				Issues: []model.Issue{
					{Line: 3, Severity: model.SeverityInfo, Kind: model.KindUnusedImport, Message: "Import 'os' might be unused"},
					{Line: 9, Severity: model.SeverityWarning, Kind: model.KindBareExcept, Message: "Using bare 'except:' is not recommended for production code"},
				},
			},
			"demo/util.py": {
				Path:      "demo/util.py",
				LineCount: 12,
			},
			"demo/broken.py": {
				Path:   "demo/broken.py",
				Failed: true,
				Issues: []model.Issue{
					{Line: 2, Severity: model.SeverityError, Kind: model.KindAnalysisFailed, Message: "Error analyzing demo/broken.py: parse error"},
				},
			},
		},
		Ratings: map[string]model.Rating{
			"demo/app.py":  {ErrorHandling: 9.5, Maintainability: 9.7, Scalability: 10, Security: 10, Overall: 9.8, Grade: "A+"},
			"demo/util.py": {ErrorHandling: 10, Maintainability: 10, Scalability: 10, Security: 10, Overall: 10, Grade: "A+"},
		},
		Summary: model.Summary{
			TotalFiles:      3,
			FilesWithIssues: 2,
			TotalIssues:     3,
			BySeverity: map[model.Severity]int{
				model.SeverityError:   1,
				model.SeverityWarning: 1,
				model.SeverityInfo:    1,
			},
			ByKind: map[model.Kind]int{
				model.KindUnusedImport:   1,
				model.KindBareExcept:     1,
				model.KindAnalysisFailed: 1,
			},
			FailedFiles:     []string{"demo/broken.py"},
			Average:         model.Rating{ErrorHandling: 9.75, Maintainability: 9.85, Scalability: 10, Security: 10, Overall: 9.9, Grade: "A+"},
			Recommendations: []string{"Remove unused imports to reduce code clutter and improve performance."},
		},
	}
}

func newTestGenerator() *Generator {
	return NewGenerator(config.DefaultConfig().Output)
}

func TestGenerateJSONRoundTrips(t *testing.T) {
	out, err := newTestGenerator().Generate(sampleReport(), "json")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var decoded model.CodebaseReport
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.RootDir != "demo" {
		t.Errorf("expected root dir demo, got %q", decoded.RootDir)
	}
	if len(decoded.Files) != 3 {
		t.Errorf("expected 3 files, got %d", len(decoded.Files))
	}
}

func TestGenerateMarkdownSections(t *testing.T) {
	out, err := newTestGenerator().Generate(sampleReport(), "markdown")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, want := range []string{
		"# Code Quality Analysis Report",
		"**Target:** demo",
		"**Overall Codebase Grade: A+** (9.9/10)",
		"### Issues by Severity",
		"### Issues by Kind",
		"## File Ratings",
		"| demo/app.py | A+ |",
		"## Failed Files",
		"`demo/broken.py`",
		"## Key Recommendations",
		"1. Remove unused imports",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}

	if strings.Contains(out, "| demo/broken.py |") {
		t.Error("failed files must not appear in the ratings table")
	}
}

func TestGenerateTextSections(t *testing.T) {
	out, err := newTestGenerator().Generate(sampleReport(), "text")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, want := range []string{
		"Code Quality Analysis Summary Report",
		"Total files analyzed: 3",
		"Files with issues: 2",
		"Overall grade: A+ (9.9/10)",
		"Failed files:",
		"demo/broken.py",
		"Recommendations:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestGenerateAcceptsFormatAliases(t *testing.T) {
	gen := newTestGenerator()
	report := sampleReport()

	md, err := gen.Generate(report, "md")
	if err != nil {
		t.Fatalf("md alias failed: %v", err)
	}
	markdown, _ := gen.Generate(report, "markdown")
	if md != markdown {
		t.Error("md and markdown must render identically")
	}

	if _, err := gen.Generate(report, "yaml"); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestKindsByCountOrdering(t *testing.T) {
	out := kindsByCount(map[model.Kind]int{
		model.KindUnusedImport:     2,
		model.KindMissingDocstring: 5,
		model.KindBareExcept:       2,
	})

	if out[0].kind != model.KindMissingDocstring {
		t.Errorf("expected highest count first, got %s", out[0].kind)
	}
	// Ties break on kind name.
	if out[1].kind != model.KindBareExcept || out[2].kind != model.KindUnusedImport {
		t.Errorf("unexpected tie ordering: %v then %v", out[1].kind, out[2].kind)
	}
}

func TestShortenPath(t *testing.T) {
	if got := shortenPath("short.py", 50); got != "short.py" {
		t.Errorf("short paths pass through, got %q", got)
	}

	long := "project/services/internal/handlers/deeply/nested/module.py"
	got := shortenPath(long, 30)
	if len(got) > 30 {
		t.Errorf("shortened path still too long: %q (%d)", got, len(got))
	}
	if !strings.HasSuffix(got, "module.py") {
		t.Errorf("shortened path should keep the file name, got %q", got)
	}
}
