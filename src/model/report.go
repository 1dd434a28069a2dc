package model

import (
	"sort"
	"time"
)

// FunctionComplexity is the recorded complexity score for one function or
// method definition.
type FunctionComplexity struct {
	Name  string `json:"name"`
	Line  int    `json:"line"`
	Score int    `json:"score"`
}

// FileReport is the per-file analysis result. Created once by the file
// analyzer and never mutated afterwards.
type FileReport struct {
	Path      string  `json:"path"`
	LineCount int     `json:"line_count"`
	Issues    []Issue `json:"issues"`

	Functions             []FunctionComplexity `json:"functions"`
	FileComplexity        int                  `json:"file_complexity"`
	FunctionsCount        int                  `json:"functions_count"`
	ClassesCount          int                  `json:"classes_count"`
	AvgFunctionComplexity float64              `json:"avg_function_complexity"`
	MaxFunctionComplexity int                  `json:"max_function_complexity"`

	// Failed marks a file whose tree could not be built. Such files carry a
	// single ANALYSIS_FAILED issue and are excluded from scoring.
	Failed bool `json:"failed,omitempty"`
}

// IssueCountBySeverity returns the number of issues of the given severity.
func (r *FileReport) IssueCountBySeverity(sev Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			n++
		}
	}
	return n
}

// Rating holds the category scores and letter grade for a file or codebase.
// Scores are always in [0.0, 10.0].
type Rating struct {
	ErrorHandling   float64 `json:"error_handling"`
	Maintainability float64 `json:"maintainability"`
	Scalability     float64 `json:"scalability"`
	Security        float64 `json:"security"`
	Overall         float64 `json:"overall"`
	Grade           string  `json:"grade"`
}

// Summary contains aggregated statistics over the whole run
type Summary struct {
	TotalFiles      int              `json:"total_files"`
	FilesWithIssues int              `json:"files_with_issues"`
	TotalIssues     int              `json:"total_issues"`
	BySeverity      map[Severity]int `json:"by_severity"`
	ByKind          map[Kind]int     `json:"by_kind"`
	FailedFiles     []string         `json:"failed_files,omitempty"`
	Average         Rating           `json:"average"`
	Recommendations []string         `json:"recommendations"`
}

// CodebaseReport is the aggregate result of one analysis run. It has no
// mutation after construction; its lifetime ends when handed to an emitter.
type CodebaseReport struct {
	RootDir     string                 `json:"root_dir"`
	GeneratedAt time.Time              `json:"generated_at"`
	Files       map[string]*FileReport `json:"files"`
	Ratings     map[string]Rating      `json:"ratings"`
	Summary     Summary                `json:"summary"`
}

// SortedPaths returns file paths ordered by overall rating, best first.
// Equal ratings fall back to path order so the output is deterministic.
// Failed files sort last.
func (r *CodebaseReport) SortedPaths() []string {
	paths := make([]string, 0, len(r.Files))
	for path := range r.Files {
		paths = append(paths, path)
	}
	sort.SliceStable(paths, func(i, j int) bool {
		ki, kj := r.ratingKey(paths[i]), r.ratingKey(paths[j])
		if ki != kj {
			return ki > kj
		}
		return paths[i] < paths[j]
	})
	return paths
}

func (r *CodebaseReport) ratingKey(path string) float64 {
	if rating, ok := r.Ratings[path]; ok {
		return rating.Overall
	}
	return -1
}
