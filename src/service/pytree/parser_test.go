package pytree

import (
	"errors"
	"strings"
	"testing"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

func TestParseValidSource(t *testing.T) {
	src := []byte(`def greet(name):
    return "hello " + name
`)

	f, err := Parse("greet.py", src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	t.Cleanup(f.Close)

	root := f.Root()
	if root.Kind() != "module" {
		t.Errorf("expected module root, got %q", root.Kind())
	}
	if root.NamedChildCount() != 1 {
		t.Errorf("expected 1 top-level definition, got %d", root.NamedChildCount())
	}

	def := root.NamedChild(0)
	if def.Kind() != "function_definition" {
		t.Fatalf("expected function_definition, got %q", def.Kind())
	}
	if name := f.Text(def.ChildByFieldName("name")); name != "greet" {
		t.Errorf("expected function name greet, got %q", name)
	}
	if Line(def) != 1 {
		t.Errorf("expected function at line 1, got %d", Line(def))
	}
}

func TestParseRejectsBrokenSource(t *testing.T) {
	src := []byte(`def broken(
    return 1
`)

	f, err := Parse("broken.py", src)
	if err == nil {
		f.Close()
		t.Fatal("expected a parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "broken.py" {
		t.Errorf("expected path broken.py, got %q", parseErr.Path)
	}
	if parseErr.Line < 1 {
		t.Errorf("expected a positive error line, got %d", parseErr.Line)
	}
	if !strings.Contains(parseErr.Error(), "broken.py") {
		t.Errorf("error string should name the file, got %q", parseErr.Error())
	}
}

func TestLineCount(t *testing.T) {
	cases := []struct {
		src  string
		want int
	}{
		{"", 0},
		{"x = 1", 1},
		{"x = 1\ny = 2\n", 3},
	}
	for _, tc := range cases {
		f, err := Parse("t.py", []byte(tc.src))
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.src, err)
		}
		if got := f.LineCount(); got != tc.want {
			t.Errorf("LineCount(%q) = %d, want %d", tc.src, got, tc.want)
		}
		f.Close()
	}
}

func TestWalkSkipsChildrenOnFalse(t *testing.T) {
	src := []byte(`def outer():
    def inner():
        pass
    return inner
`)

	f, err := Parse("nested.py", src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	t.Cleanup(f.Close)

	sawInner := false
	Walk(f.Root(), func(n *tree_sitter.Node) bool {
		name := f.Text(n.ChildByFieldName("name"))
		if n.Kind() == "function_definition" && name == "inner" {
			sawInner = true
		}
		// Stop at the outer definition; inner must never be reached.
		return !(n.Kind() == "function_definition" && name == "outer")
	})

	if sawInner {
		t.Error("Walk descended into a subtree the callback declined")
	}
}
