package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("code-reviewer %s\n", h.cfg.App.Version)
		},
	}
}

func (h *Handler) visitorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "visitors",
		Short: "List available metric visitors",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available visitors:")
			fmt.Println("  - complexity     : Cyclomatic complexity per function and per file")
			fmt.Println("  - scalability    : Hardcoded config, unbounded queries, resource leaks, large loops")
			fmt.Println("  - import_usage   : Imports never referenced in the file")
			fmt.Println("  - docstring      : Modules, classes, and functions without docstrings")
			fmt.Println("  - error_handling : Missing try blocks, bare except clauses, unhandled IO")
			fmt.Println("  - line_scan      : Long lines, TODO comments, print statements, SQL injection risk")
		},
	}
}
