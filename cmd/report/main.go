package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fcpulse/internal/config"
	"fcpulse/internal/infrastructure"
	"fcpulse/internal/services"
)

func main() {
	dataDir := flag.String("data", "", "directory holding the source datasets (defaults to data/ next to the executable)")
	outDir := flag.String("out", "", "output directory for generated reports (defaults to reports/ next to the executable)")
	tolerance := flag.Float64("tolerance", -1, "maximum tolerated fraction of missing values per numeric column (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	paths, err := config.GetPaths()
	if err != nil {
		logger.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	applyPathOverrides(paths, cfg, *dataDir, *outDir)

	missingTolerance := cfg.Analysis.MissingTolerance
	if *tolerance >= 0 {
		missingTolerance = *tolerance
	}

	service := services.NewReportService(paths, missingTolerance, logger)

	summary, err := service.Generate(context.Background())
	if err != nil {
		logger.Error("Report generation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Report generated",
		"run_id", summary.RunID,
		"markdown", paths.MarkdownReport,
		"summary_json", paths.SummaryJSON)

	printRunSummary(summary.Revenue.CombinedTotal, summary.Revenue.StadiumShare,
		summary.Fanbase.EngagementMultiplier, paths.MarkdownReport)
}

// applyPathOverrides layers flag values over config values over defaults.
func applyPathOverrides(paths *config.Paths, cfg *config.Config, dataDir, outDir string) {
	if cfg.Paths.DataDir != "" {
		paths.DataDir = cfg.Paths.DataDir
	}
	if cfg.Paths.ReportsDir != "" {
		setReportsDir(paths, cfg.Paths.ReportsDir)
	}
	if dataDir != "" {
		paths.DataDir = dataDir
	}
	if outDir != "" {
		setReportsDir(paths, outDir)
	}
}

func setReportsDir(paths *config.Paths, dir string) {
	paths.ReportsDir = dir
	paths.MarkdownReport = paths.GetReportPath("club_performance_report.md")
	paths.SummaryJSON = paths.GetReportPath("club_summary.json")
}

func printRunSummary(combined, stadiumShare, engagement float64, reportPath string) {
	fmt.Println("\n=== CLUB PERFORMANCE REPORT ===")
	fmt.Printf("Combined revenue:      $%.0f\n", combined)
	fmt.Printf("Stadium revenue share: %.1f%%\n", stadiumShare)
	fmt.Printf("Engagement multiplier: %.1fx\n", engagement)
	fmt.Printf("Report written to:     %s\n", reportPath)
}
