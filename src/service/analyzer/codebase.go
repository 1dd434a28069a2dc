package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"code-reviewer/src/config"
	"code-reviewer/src/model"
	"code-reviewer/src/service/pytree"
	"code-reviewer/src/util"
)

// ErrNoSourceFiles is returned when the target set contains nothing to
// analyze. It is the only terminal condition of a run.
var ErrNoSourceFiles = errors.New("no source files to analyze")

// CodebaseAnalyzer runs the file analyzer over every file under a root
// directory and merges the results into a CodebaseReport.
type CodebaseAnalyzer struct {
	cfg        *config.Config
	files      *FileAnalyzer
	exclusions *util.ExclusionMatcher
}

// NewCodebaseAnalyzer creates a codebase analyzer
func NewCodebaseAnalyzer(cfg *config.Config) *CodebaseAnalyzer {
	return &CodebaseAnalyzer{
		cfg:        cfg,
		files:      NewFileAnalyzer(cfg),
		exclusions: util.NewExclusionMatcher(cfg.Exclusions),
	}
}

// Analyze scans rootDir and analyzes every matching file. Files are
// processed concurrently; each worker returns its FileReport and the merge
// into the report is sequential. A single file's failure never invalidates
// the aggregate.
func (c *CodebaseAnalyzer) Analyze(ctx context.Context, rootDir string) (*model.CodebaseReport, error) {
	startTime := time.Now()

	paths, err := c.ScanFiles(rootDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoSourceFiles, rootDir)
	}
	util.Info("Found %d source files under %s", len(paths), rootDir)

	workers := c.cfg.Analysis.Workers
	if workers <= 0 {
		workers = 1
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan string)
	results := make(chan *model.FileReport)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				fr := c.analyzeOne(path)
				if fr.Failed && c.cfg.Analysis.FailFast {
					cancel()
				}
				results <- fr
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case jobs <- path:
			case <-runCtx.Done():
				// Fail-fast or caller cancellation: stop submitting new
				// file tasks; in-flight files still report.
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Single-writer merge.
	report := &model.CodebaseReport{
		RootDir:     rootDir,
		GeneratedAt: time.Now().UTC(),
		Files:       make(map[string]*model.FileReport),
		Ratings:     make(map[string]model.Rating),
	}
	for fr := range results {
		report.Files[fr.Path] = fr
	}

	c.rate(report)
	c.summarize(report)

	util.Info("Analysis complete: %d files, %d issues (took %v)",
		len(report.Files), report.Summary.TotalIssues, time.Since(startTime))

	return report, nil
}

// ScanFiles walks rootDir and returns the relative paths of all source
// files matching the configured extensions, minus exclusions.
func (c *CodebaseAnalyzer) ScanFiles(rootDir string) ([]string, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("reading target %s: %w", rootDir, err)
	}
	if !info.IsDir() {
		// Explicit file targets go through the same filters as walked ones.
		target := filepath.ToSlash(rootDir)
		if !c.matchesExtension(target) || c.exclusions.Matches(target) {
			return nil, nil
		}
		return []string{rootDir}, nil
	}

	var paths []string
	err = filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		if !c.matchesExtension(rel) || c.exclusions.Matches(rel) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", rootDir, err)
	}

	sort.Strings(paths)
	return paths, nil
}

func (c *CodebaseAnalyzer) matchesExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range c.cfg.Analysis.FileExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// analyzeOne analyzes a single file, downgrading any failure to an
// ANALYSIS_FAILED issue so the run continues.
func (c *CodebaseAnalyzer) analyzeOne(path string) *model.FileReport {
	src, err := os.ReadFile(path)
	if err == nil {
		var fr *model.FileReport
		fr, err = c.files.Analyze(path, src)
		if err == nil {
			return fr
		}
	}

	line := 1
	var parseErr *pytree.ParseError
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		line = parseErr.Line
	}

	util.Warn("Analysis failed for %s: %v", path, err)
	return &model.FileReport{
		Path:   path,
		Failed: true,
		Issues: []model.Issue{{
			Line:     line,
			Severity: model.SeverityError,
			Kind:     model.KindAnalysisFailed,
			Message:  fmt.Sprintf("Error analyzing %s: %v", path, err),
		}},
	}
}

// rate computes per-file category scores and grades. Each category starts
// at 10.0 and loses a fixed per-kind penalty for every matching issue;
// categories with no matching kinds stay at 10.0. Failed files get no
// rating.
func (c *CodebaseAnalyzer) rate(report *model.CodebaseReport) {
	for path, fr := range report.Files {
		if fr.Failed {
			continue
		}
		report.Ratings[path] = c.rateFile(fr)
	}
}

func (c *CodebaseAnalyzer) rateFile(fr *model.FileReport) model.Rating {
	scores := map[model.Category]float64{
		model.CategoryErrorHandling:   10.0,
		model.CategoryMaintainability: 10.0,
		model.CategoryScalability:     10.0,
		model.CategorySecurity:        10.0,
	}

	for _, issue := range fr.Issues {
		policy, ok := c.cfg.Scoring.Penalties[string(issue.Kind)]
		if !ok {
			continue
		}
		scores[model.Category(policy.Category)] -= policy.Penalty
	}

	rating := model.Rating{
		ErrorHandling:   clampScore(scores[model.CategoryErrorHandling]),
		Maintainability: clampScore(scores[model.CategoryMaintainability]),
		Scalability:     clampScore(scores[model.CategoryScalability]),
		Security:        clampScore(scores[model.CategorySecurity]),
	}
	rating.Overall = clampScore((rating.ErrorHandling + rating.Maintainability +
		rating.Scalability + rating.Security) / 4)
	rating.Grade = c.ScoreToGrade(rating.Overall)
	return rating
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// ScoreToGrade maps a 0-10 score to a letter grade using the configured
// band table. Bands are checked best-first, so the mapping is monotonic.
func (c *CodebaseAnalyzer) ScoreToGrade(score float64) string {
	for _, band := range c.cfg.Scoring.Grades {
		if score >= band.Min {
			return band.Grade
		}
	}
	return "F"
}

// summarize fills the aggregate counters, the codebase-average rating, and
// the recommendation strings.
func (c *CodebaseAnalyzer) summarize(report *model.CodebaseReport) {
	summary := model.Summary{
		TotalFiles: len(report.Files),
		BySeverity: make(map[model.Severity]int),
		ByKind:     make(map[model.Kind]int),
	}

	for path, fr := range report.Files {
		if len(fr.Issues) > 0 {
			summary.FilesWithIssues++
		}
		summary.TotalIssues += len(fr.Issues)
		for _, issue := range fr.Issues {
			summary.BySeverity[issue.Severity]++
			summary.ByKind[issue.Kind]++
		}
		if fr.Failed {
			summary.FailedFiles = append(summary.FailedFiles, path)
		}
	}
	sort.Strings(summary.FailedFiles)

	// Overall scores average only the successfully analyzed files.
	rated := len(report.Ratings)
	if rated > 0 {
		var avg model.Rating
		for _, r := range report.Ratings {
			avg.ErrorHandling += r.ErrorHandling
			avg.Maintainability += r.Maintainability
			avg.Scalability += r.Scalability
			avg.Security += r.Security
			avg.Overall += r.Overall
		}
		avg.ErrorHandling /= float64(rated)
		avg.Maintainability /= float64(rated)
		avg.Scalability /= float64(rated)
		avg.Security /= float64(rated)
		avg.Overall /= float64(rated)
		avg.Grade = c.ScoreToGrade(avg.Overall)
		summary.Average = avg
	}

	summary.Recommendations = c.recommendations(summary.ByKind)
	report.Summary = summary
}

// recommendationTexts pairs issue kinds with the advice emitted when the
// kind's count exceeds the configured threshold. Order fixes the output.
var recommendationTexts = []struct {
	kind model.Kind
	text string
}{
	{model.KindMissingErrorHandling, "Add proper error handling to functions that lack it, especially those performing I/O operations."},
	{model.KindBareExcept, "Replace bare 'except:' clauses with specific exception handlers to avoid masking critical errors."},
	{model.KindUnhandledIO, "Use try-except blocks or context managers (with statement) for all file and network operations."},
	{model.KindMissingDocstring, "Add docstrings to all modules, classes, and functions to improve code clarity and maintainability."},
	{model.KindUnusedImport, "Remove unused imports to reduce code clutter and improve performance."},
	{model.KindPrintStatement, "Replace print statements with proper logging for better debugging and monitoring in production."},
	{model.KindTodoComment, "Address TODO comments in the code or convert them to tracked issues in your project management system."},
	{model.KindHardcodedConfig, "Move hardcoded configuration values to configuration files or environment variables."},
	{model.KindUnboundedQuery, "Add LIMIT clauses or pagination to unbounded queries, particularly in data processing and database operations."},
	{model.KindLargeLoop, "Review large literal-bound loops for streaming or batching opportunities."},
	{model.KindResourceLeakRisk, "Ensure proper resource management with context managers (with statements) for files, connections, etc."},
	{model.KindSQLInjectionRisk, "Use parameterized queries or ORM to prevent SQL injection vulnerabilities."},
}

func (c *CodebaseAnalyzer) recommendations(byKind map[model.Kind]int) []string {
	threshold := c.cfg.Scoring.RecommendAboveCount
	var recs []string
	for _, r := range recommendationTexts {
		if byKind[r.kind] > threshold {
			recs = append(recs, r.text)
		}
	}
	return recs
}
