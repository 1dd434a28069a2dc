package visitor

import (
	"testing"

	"code-reviewer/src/model"
)

func docstringIssues(t *testing.T, src string) []model.Issue {
	t.Helper()
	f := parseSource(t, src)
	issues, err := NewDocstringVisitor().Analyze(f)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return issues
}

func TestDocstringFullyDocumented(t *testing.T) {
	issues := docstringIssues(t, `"""Module docs."""


class Widget:
    """A widget."""

    def render(self):
        """Draw it."""
        return None
`)

	if len(issues) != 0 {
		t.Errorf("expected no issues, got %d: %v", len(issues), issues)
	}
}

func TestDocstringMissingEverywhere(t *testing.T) {
	issues := docstringIssues(t, `class Widget:
    def render(self):
        return None
`)

	if len(issues) != 3 {
		t.Fatalf("expected 3 issues (module, class, function), got %d", len(issues))
	}

	want := []struct {
		line    int
		message string
	}{
		{1, "Module is missing a docstring"},
		{1, "Class 'Widget' is missing a docstring"},
		{2, "Function 'render' is missing a docstring"},
	}
	for i, w := range want {
		if issues[i].Kind != model.KindMissingDocstring {
			t.Errorf("issue %d: unexpected kind %q", i, issues[i].Kind)
		}
		if issues[i].Line != w.line {
			t.Errorf("issue %d: expected line %d, got %d", i, w.line, issues[i].Line)
		}
		if issues[i].Message != w.message {
			t.Errorf("issue %d: expected message %q, got %q", i, w.message, issues[i].Message)
		}
	}
}

func TestDocstringCommentIsNotADocstring(t *testing.T) {
	issues := docstringIssues(t, `# module comment, not a docstring
def f():
    # explains nothing
    return 1
`)

	if len(issues) != 2 {
		t.Fatalf("expected module and function issues, got %d", len(issues))
	}
}

func TestDocstringNonStringFirstStatement(t *testing.T) {
	issues := docstringIssues(t, `"""Docs."""


def f():
    x = "not a docstring"
    return x
`)

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Message != "Function 'f' is missing a docstring" {
		t.Errorf("unexpected message %q", issues[0].Message)
	}
}
