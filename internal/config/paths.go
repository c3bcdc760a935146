package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file paths in the application.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string

	// Well-known output files inside ReportsDir
	MarkdownReport string
	SummaryJSON    string
}

// GetPaths returns the application paths relative to the executable location.
// Paths are always relative to the executable directory, never the current
// working directory, so the binaries behave the same wherever they are run from.
//
// Directory structure:
//
//	fcpulse/
//	  ├── data/        (source datasets: CSV or XLSX)
//	  ├── reports/     (generated markdown, CSV and JSON reports)
//	  └── logs/        (application logs)
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return PathsFromBase(filepath.Dir(exe)), nil
}

// PathsFromBase builds the path layout rooted at the given directory.
// Used directly by tests and by commands that accept a -data override.
func PathsFromBase(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	reportsDir := filepath.Join(baseDir, "reports")

	return &Paths{
		ExecutableDir:  baseDir,
		DataDir:        dataDir,
		ReportsDir:     reportsDir,
		LogsDir:        filepath.Join(baseDir, "logs"),
		MarkdownReport: filepath.Join(reportsDir, "club_performance_report.md"),
		SummaryJSON:    filepath.Join(reportsDir, "club_summary.json"),
	}
}

// GetReportPath returns the full path for a file inside the reports directory
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetDataPath returns the full path for a file inside the data directory
func (p *Paths) GetDataPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// EnsureDirectories creates every directory the application writes to
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
