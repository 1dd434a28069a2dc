package util

import (
	"path/filepath"
	"strings"

	"code-reviewer/src/config"
)

// ExclusionMatcher matches file paths against exclusion patterns
type ExclusionMatcher struct {
	filePatterns []string
	files        []string
}

// NewExclusionMatcher creates a new exclusion matcher from config
func NewExclusionMatcher(cfg config.ExclusionsConfig) *ExclusionMatcher {
	return &ExclusionMatcher{
		filePatterns: cfg.FilePatterns,
		files:        cfg.Files,
	}
}

// Matches checks if a file path should be excluded from analysis
func (m *ExclusionMatcher) Matches(filePath string) bool {
	for _, f := range m.files {
		if filePath == f {
			return true
		}
	}

	for _, pattern := range m.filePatterns {
		if matched, _ := filepath.Match(pattern, filePath); matched {
			return true
		}
		if matchDoubleGlob(pattern, filePath) {
			return true
		}
	}

	return false
}

// matchDoubleGlob handles ** patterns in globs
func matchDoubleGlob(pattern, path string) bool {
	if !strings.Contains(pattern, "**") {
		return false
	}

	// Every literal segment between ** markers must appear in the path as a
	// whole path element, in order. Good enough for patterns like
	// **/venv/** or vendor/**.
	rest := "/" + path + "/"
	for _, part := range strings.Split(pattern, "**") {
		part = strings.Trim(part, "/")
		if part == "" {
			continue
		}
		idx := strings.Index(rest, "/"+part+"/")
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part)+1:]
	}
	return true
}
