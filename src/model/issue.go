package model

// Severity represents the severity level of a finding
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Kind identifies which heuristic produced a finding
type Kind string

const (
	KindUnusedImport     Kind = "UNUSED_IMPORT"
	KindMissingDocstring Kind = "MISSING_DOCSTRING"
	KindHardcodedConfig  Kind = "HARDCODED_CONFIG"
	KindResourceLeakRisk Kind = "RESOURCE_LEAK_RISK"
	KindUnboundedQuery   Kind = "UNBOUNDED_QUERY"
	KindLargeLoop        Kind = "LARGE_LOOP"

	KindMissingErrorHandling Kind = "MISSING_ERROR_HANDLING"
	KindBareExcept           Kind = "BARE_EXCEPT"
	KindUnhandledIO          Kind = "UNHANDLED_IO"

	KindLongLine         Kind = "LONG_LINE"
	KindTodoComment      Kind = "TODO_COMMENT"
	KindPrintStatement   Kind = "PRINT_STATEMENT"
	KindSQLInjectionRisk Kind = "SQL_INJECTION_RISK"

	KindAnalysisFailed Kind = "ANALYSIS_FAILED"
)

// Category groups issue kinds for scoring
type Category string

const (
	CategoryErrorHandling   Category = "error_handling"
	CategoryMaintainability Category = "maintainability"
	CategoryScalability     Category = "scalability"
	CategorySecurity        Category = "security"
)

// Issue represents a single detected finding in a source file.
// Immutable once created; Line is 1-based.
type Issue struct {
	Line     int      `json:"line"`
	Severity Severity `json:"severity"`
	Kind     Kind     `json:"kind"`
	Message  string   `json:"message"`
}
