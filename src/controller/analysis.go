package controller

import (
	"context"
	"time"

	"code-reviewer/src/config"
	"code-reviewer/src/model"
	"code-reviewer/src/service/analyzer"
	"code-reviewer/src/util"
)

// AnalysisController orchestrates the analysis of one codebase
type AnalysisController struct {
	cfg *config.Config
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// AnalyzeRequest represents a request to analyze a directory tree
type AnalyzeRequest struct {
	RootDir string
}

// Analyze runs the full analysis pipeline
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*model.CodebaseReport, error) {
	startTime := time.Now()
	util.Info("Starting analysis of %s", req.RootDir)

	codebase := analyzer.NewCodebaseAnalyzer(c.cfg)
	report, err := codebase.Analyze(ctx, req.RootDir)
	if err != nil {
		util.Error("Analysis failed: %v", err)
		return nil, err
	}

	util.Info("Analysis finished: grade %s, %d issues (took %v)",
		report.Summary.Average.Grade, report.Summary.TotalIssues, time.Since(startTime))

	return report, nil
}
