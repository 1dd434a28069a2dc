package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "code-reviewer",
			Version:     "1.0.0",
			Description: "Static Python code quality reviewer",
		},
		Analysis: AnalysisConfig{
			FileExtensions: []string{".py"},
			Workers:        4,
			FailFast:       false,
		},
		Visitors: VisitorsConfig{
			Complexity: ComplexityVisitorConfig{
				Enabled: true,
			},
			Scalability: ScalabilityVisitorConfig{
				Enabled:            true,
				LargeLoopThreshold: 1000,
			},
			ImportUsage: ImportUsageVisitorConfig{
				Enabled: true,
			},
			Docstring: DocstringVisitorConfig{
				Enabled: true,
			},
			ErrorHandling: ErrorHandlingVisitorConfig{
				Enabled: true,
			},
			LineScan: LineScanVisitorConfig{
				Enabled:       true,
				MaxLineLength: 100,
			},
		},
		Scoring: ScoringConfig{
			Penalties: map[string]KindPolicy{
				"MISSING_ERROR_HANDLING": {Category: "error_handling", Penalty: 0.5},
				"BARE_EXCEPT":            {Category: "error_handling", Penalty: 0.5},
				"UNHANDLED_IO":           {Category: "error_handling", Penalty: 0.5},
				"MISSING_DOCSTRING":      {Category: "maintainability", Penalty: 0.3},
				"UNUSED_IMPORT":          {Category: "maintainability", Penalty: 0.3},
				"LONG_LINE":              {Category: "maintainability", Penalty: 0.3},
				"TODO_COMMENT":           {Category: "maintainability", Penalty: 0.3},
				"PRINT_STATEMENT":        {Category: "maintainability", Penalty: 0.3},
				"HARDCODED_CONFIG":       {Category: "scalability", Penalty: 0.4},
				"RESOURCE_LEAK_RISK":     {Category: "scalability", Penalty: 0.4},
				"UNBOUNDED_QUERY":        {Category: "scalability", Penalty: 0.4},
				"LARGE_LOOP":             {Category: "scalability", Penalty: 0.4},
				"SQL_INJECTION_RISK":     {Category: "security", Penalty: 2.0},
			},
			Grades: []GradeBand{
				{Min: 9.5, Grade: "A+"},
				{Min: 8.5, Grade: "A"},
				{Min: 8.0, Grade: "A-"},
				{Min: 7.5, Grade: "B+"},
				{Min: 7.0, Grade: "B"},
				{Min: 6.5, Grade: "B-"},
				{Min: 6.0, Grade: "C+"},
				{Min: 5.5, Grade: "C"},
				{Min: 5.0, Grade: "C-"},
				{Min: 4.0, Grade: "D"},
			},
			RecommendAboveCount: 0,
		},
		Exclusions: ExclusionsConfig{
			FilePatterns: []string{
				"**/venv/**", "**/.venv/**", "**/__pycache__/**",
				"**/node_modules/**", "**/.git/**",
			},
		},
		Output: OutputConfig{
			Formats:   []string{"text"},
			OutputDir: ".",
			TopN:      10,
		},
		Logging: LoggingConfig{
			Level:            "info",
			IncludeTimestamp: true,
		},
	}
}
