package config

// Config is the root configuration structure
type Config struct {
	App        AppConfig        `yaml:"app"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Visitors   VisitorsConfig   `yaml:"visitors"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Exclusions ExclusionsConfig `yaml:"exclusions"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// AppConfig contains tool metadata
type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// AnalysisConfig contains analysis run settings
type AnalysisConfig struct {
	FileExtensions []string `yaml:"file_extensions"`
	Workers        int      `yaml:"workers"`
	FailFast       bool     `yaml:"fail_fast"`
}

// VisitorsConfig contains settings for all metric visitors
type VisitorsConfig struct {
	Complexity    ComplexityVisitorConfig    `yaml:"complexity"`
	Scalability   ScalabilityVisitorConfig   `yaml:"scalability"`
	ImportUsage   ImportUsageVisitorConfig   `yaml:"import_usage"`
	Docstring     DocstringVisitorConfig     `yaml:"docstring"`
	ErrorHandling ErrorHandlingVisitorConfig `yaml:"error_handling"`
	LineScan      LineScanVisitorConfig      `yaml:"line_scan"`
}

// ComplexityVisitorConfig contains complexity visitor settings
type ComplexityVisitorConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ScalabilityVisitorConfig contains scalability visitor settings
type ScalabilityVisitorConfig struct {
	Enabled            bool `yaml:"enabled"`
	LargeLoopThreshold int  `yaml:"large_loop_threshold"`
}

// ImportUsageVisitorConfig contains unused-import visitor settings
type ImportUsageVisitorConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DocstringVisitorConfig contains docstring visitor settings
type DocstringVisitorConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ErrorHandlingVisitorConfig contains error-handling visitor settings
type ErrorHandlingVisitorConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LineScanVisitorConfig contains line-scan visitor settings
type LineScanVisitorConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxLineLength int  `yaml:"max_line_length"`
}

// KindPolicy maps one issue kind to a score category and the penalty each
// occurrence subtracts from that category.
type KindPolicy struct {
	Category string  `yaml:"category"`
	Penalty  float64 `yaml:"penalty"`
}

// GradeBand maps a minimum score to a letter grade. Bands are evaluated in
// order, so they must be sorted by descending Min.
type GradeBand struct {
	Min   float64 `yaml:"min"`
	Grade string  `yaml:"grade"`
}

// ScoringConfig contains the rating policy tables
type ScoringConfig struct {
	Penalties           map[string]KindPolicy `yaml:"penalties"`
	Grades              []GradeBand           `yaml:"grades"`
	RecommendAboveCount int                   `yaml:"recommend_above_count"`
}

// ExclusionsConfig contains exclusion patterns for the file walk
type ExclusionsConfig struct {
	FilePatterns []string `yaml:"file_patterns"`
	Files        []string `yaml:"files"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats   []string `yaml:"formats"`
	OutputDir string   `yaml:"output_dir"`
	TopN      int      `yaml:"top_n"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
}
