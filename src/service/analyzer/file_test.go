package analyzer

import (
	"errors"
	"testing"

	"code-reviewer/src/config"
	"code-reviewer/src/model"
	"code-reviewer/src/service/pytree"
)

func TestFileAnalyzerMergesVisitorFindings(t *testing.T) {
	src := []byte(`import os

MAX_RETRIES = 5


def load(path):
    fh = open(path)
    return fh.read()
`)

	fa := NewFileAnalyzer(config.DefaultConfig())
	report, err := fa.Analyze("load.py", src)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.Path != "load.py" {
		t.Errorf("expected path load.py, got %q", report.Path)
	}
	if report.LineCount != 9 {
		t.Errorf("expected 9 lines, got %d", report.LineCount)
	}
	if report.FunctionsCount != 1 {
		t.Errorf("expected 1 function, got %d", report.FunctionsCount)
	}
	if report.FileComplexity != 1 {
		t.Errorf("expected file complexity 1, got %d", report.FileComplexity)
	}

	wantKinds := map[model.Kind]bool{
		model.KindUnusedImport:         true,
		model.KindHardcodedConfig:      true,
		model.KindMissingDocstring:     true,
		model.KindResourceLeakRisk:     true,
		model.KindMissingErrorHandling: true,
		model.KindUnhandledIO:          true,
	}
	got := make(map[model.Kind]bool)
	for _, issue := range report.Issues {
		got[issue.Kind] = true
	}
	for kind := range wantKinds {
		if !got[kind] {
			t.Errorf("expected an issue of kind %s", kind)
		}
	}

	for i := 1; i < len(report.Issues); i++ {
		if report.Issues[i].Line < report.Issues[i-1].Line {
			t.Fatalf("issues not ordered by line: %v", report.Issues)
		}
	}
}

func TestFileAnalyzerDisabledVisitors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Visitors.Docstring.Enabled = false
	cfg.Visitors.ImportUsage.Enabled = false

	src := []byte(`import os
`)

	fa := NewFileAnalyzer(cfg)
	report, err := fa.Analyze("bare.py", src)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	for _, issue := range report.Issues {
		if issue.Kind == model.KindUnusedImport || issue.Kind == model.KindMissingDocstring {
			t.Errorf("disabled visitor still emitted %s", issue.Kind)
		}
	}
}

func TestFileAnalyzerParseErrorPropagates(t *testing.T) {
	fa := NewFileAnalyzer(config.DefaultConfig())
	_, err := fa.Analyze("broken.py", []byte("def broken(\n"))
	if err == nil {
		t.Fatal("expected a parse error")
	}

	var parseErr *pytree.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *pytree.ParseError, got %T", err)
	}
}

func TestFileAnalyzerCleanFile(t *testing.T) {
	src := []byte(`"""Utility helpers."""


def noop():
    """Do nothing."""
`)

	fa := NewFileAnalyzer(config.DefaultConfig())
	report, err := fa.Analyze("clean.py", src)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(report.Issues) != 0 {
		t.Errorf("expected no issues, got %v", report.Issues)
	}
}
