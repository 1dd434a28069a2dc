package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"code-reviewer/src/controller"
	"code-reviewer/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		outputDir string
		format    string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a directory of Python source files",
		Long:  "Runs all enabled visitors over every source file under the target path and generates a quality report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rootDir := "."
			if len(args) > 0 {
				rootDir = args[0]
			}

			util.Info("Analyzing %s (timeout: %v)", rootDir, timeout)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			report, err := analysisCtrl.Analyze(ctx, controller.AnalyzeRequest{
				RootDir: rootDir,
			})
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)

			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(report)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Printf("Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "text"
				}

				output, err := reportCtrl.GenerateToString(report, outputFormat)
				if err != nil {
					// Fallback to raw JSON
					data, _ := json.MarshalIndent(report, "", "  ")
					fmt.Println(string(data))
				} else {
					fmt.Println(output)
				}
			}

			fmt.Fprintf(os.Stderr, "\nAnalysis complete:\n")
			fmt.Fprintf(os.Stderr, "  Files analyzed: %d\n", report.Summary.TotalFiles)
			fmt.Fprintf(os.Stderr, "  Total issues: %d\n", report.Summary.TotalIssues)
			fmt.Fprintf(os.Stderr, "  Overall grade: %s (%.1f/10)\n",
				report.Summary.Average.Grade, report.Summary.Average.Overall)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, markdown, json)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	return cmd
}
