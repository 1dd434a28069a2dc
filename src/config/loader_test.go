package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	loader := NewLoader()
	cfg, err := loader.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Analysis.Workers != defaults.Analysis.Workers {
		t.Errorf("expected default workers %d, got %d", defaults.Analysis.Workers, cfg.Analysis.Workers)
	}
	if cfg.Visitors.Scalability.LargeLoopThreshold != 1000 {
		t.Errorf("expected default large loop threshold 1000, got %d",
			cfg.Visitors.Scalability.LargeLoopThreshold)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
analysis:
  workers: 2
visitors:
  line_scan:
    enabled: true
    max_line_length: 120
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Analysis.Workers != 2 {
		t.Errorf("expected workers 2, got %d", cfg.Analysis.Workers)
	}
	if cfg.Visitors.LineScan.MaxLineLength != 120 {
		t.Errorf("expected max line length 120, got %d", cfg.Visitors.LineScan.MaxLineLength)
	}
	// Untouched sections keep their defaults.
	if !cfg.Visitors.Docstring.Enabled {
		t.Error("unset sections must keep defaults")
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml: ["), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := NewLoader().Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CR_TEST_LEVEL", "debug")
	loader := NewLoader()

	cases := []struct {
		in   string
		want string
	}{
		{"level: ${CR_TEST_LEVEL}", "level: debug"},
		{"level: ${CR_TEST_LEVEL:-info}", "level: debug"},
		{"level: ${CR_TEST_UNSET:-info}", "level: info"},
		{"level: ${CR_TEST_UNSET}", "level: "},
		{"level: plain", "level: plain"},
	}
	for _, tc := range cases {
		if got := loader.expandEnvVars(tc.in); got != tc.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
