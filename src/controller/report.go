package controller

import (
	"os"
	"path/filepath"

	"code-reviewer/src/config"
	"code-reviewer/src/model"
	"code-reviewer/src/service/report"
	"code-reviewer/src/util"
)

// ReportController handles report generation
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports writes reports in all configured formats and returns the
// paths written.
func (c *ReportController) GenerateReports(codebaseReport *model.CodebaseReport) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	generator := report.NewGenerator(c.cfg.Output)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		output, err := generator.Generate(codebaseReport, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates a report to a string
func (c *ReportController) GenerateToString(codebaseReport *model.CodebaseReport, format string) (string, error) {
	generator := report.NewGenerator(c.cfg.Output)
	return generator.Generate(codebaseReport, format)
}

func (c *ReportController) getOutputPath(format string) string {
	ext := format
	switch format {
	case "markdown":
		ext = "md"
	case "text":
		ext = "txt"
	}

	return filepath.Join(c.cfg.Output.OutputDir, "code-quality-report."+ext)
}
