package visitor

import (
	"strings"
	"testing"

	"code-reviewer/src/model"
)

func lineScanIssues(t *testing.T, src string) []model.Issue {
	t.Helper()
	f := parseSource(t, src)
	issues, err := NewLineScanVisitor(100).Analyze(f)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return issues
}

func TestLineScanLongLine(t *testing.T) {
	long := "x = \"" + strings.Repeat("a", 120) + "\"\n"
	issues := lineScanIssues(t, long)

	found := issuesOfKind(issues, model.KindLongLine)
	if len(found) != 1 {
		t.Fatalf("expected 1 long-line issue, got %d", len(found))
	}
	if !strings.Contains(found[0].Message, "100") {
		t.Errorf("message should state the limit, got %q", found[0].Message)
	}
}

func TestLineScanLongLineCountsRunes(t *testing.T) {
	// 90 two-byte runes: 180 bytes but only 96 characters with the quoting,
	// so the line fits within the limit.
	src := "x = \"" + strings.Repeat("é", 90) + "\"\n"
	issues := lineScanIssues(t, src)

	if found := issuesOfKind(issues, model.KindLongLine); len(found) != 0 {
		t.Errorf("line width is measured in characters, not bytes; got %v", found)
	}

	src = "x = \"" + strings.Repeat("é", 110) + "\"\n"
	found := issuesOfKind(lineScanIssues(t, src), model.KindLongLine)
	if len(found) != 1 {
		t.Fatalf("expected 1 long-line issue, got %d", len(found))
	}
	if !strings.Contains(found[0].Message, "(116)") {
		t.Errorf("message should report the rune count, got %q", found[0].Message)
	}
}

func TestLineScanTodoComment(t *testing.T) {
	issues := lineScanIssues(t, `
x = 1  # TODO: handle negatives
y = 2  # regular comment
`)

	found := issuesOfKind(issues, model.KindTodoComment)
	if len(found) != 1 {
		t.Fatalf("expected 1 TODO issue, got %d", len(found))
	}
	if found[0].Line != 2 {
		t.Errorf("expected issue at line 2, got %d", found[0].Line)
	}
}

func TestLineScanPrintStatement(t *testing.T) {
	issues := lineScanIssues(t, `
print("debug")
pprint(thing)
def print_report():
    pass
`)

	found := issuesOfKind(issues, model.KindPrintStatement)
	if len(found) != 1 {
		t.Fatalf("expected 1 print issue, got %d", len(found))
	}
	if found[0].Line != 2 {
		t.Errorf("expected issue at line 2, got %d", found[0].Line)
	}
}

func TestLineScanSQLInjection(t *testing.T) {
	issues := lineScanIssues(t, `
cursor.execute("SELECT * FROM t WHERE id = %s" % user_id)
cursor.execute(f"SELECT * FROM t WHERE id = {user_id}")
cursor.execute("SELECT * FROM t WHERE id = ?", (user_id,))
`)

	found := issuesOfKind(issues, model.KindSQLInjectionRisk)
	if len(found) != 2 {
		t.Fatalf("expected 2 SQL injection issues, got %d", len(found))
	}
	for _, issue := range found {
		if issue.Severity != model.SeverityError {
			t.Errorf("expected error severity, got %q", issue.Severity)
		}
	}
}
