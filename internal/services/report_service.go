package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fcpulse/internal/analysis"
	"fcpulse/internal/config"
	"fcpulse/internal/dataset"
	"fcpulse/internal/errors"
	"fcpulse/internal/exporter"
	"fcpulse/internal/infrastructure"
	"fcpulse/internal/report"
	"fcpulse/internal/validation"
)

// Base names of the three source datasets. The loader accepts each of
// them as CSV or as an Excel workbook.
const (
	StadiumFileBase     = "stadium_operations"
	MerchandiseFileBase = "merchandise_sales"
	FanbaseFileBase     = "fanbase_data"
)

var datasetExtensions = []string{".csv", ".xlsx", ".xls"}

// ReportService runs the full reporting pipeline: validate the data
// directory, load the three datasets, build the club summary and write
// the markdown, CSV and JSON outputs.
type ReportService struct {
	paths      *config.Paths
	logger     *slog.Logger
	loader     *dataset.Loader
	summarizer *analysis.Summarizer
	validator  *validation.FileValidator
	exporter   *exporter.SummaryExporter
}

// NewReportService creates a report service rooted at the given paths.
func NewReportService(paths *config.Paths, missingTolerance float64, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("ReportService initialized",
		slog.String("data_dir", paths.DataDir),
		slog.String("reports_dir", paths.ReportsDir),
		slog.Float64("missing_tolerance", missingTolerance))

	return &ReportService{
		paths:      paths,
		logger:     logger,
		loader:     dataset.NewLoader(logger, missingTolerance),
		summarizer: analysis.NewSummarizer(logger),
		validator:  validation.NewFileValidator(logger),
		exporter:   exporter.NewSummaryExporter(paths),
	}
}

// Generate runs one full pipeline pass and returns the resulting summary.
// All report files are written under the reports directory.
func (s *ReportService) Generate(ctx context.Context) (*analysis.ClubSummary, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	logger := s.logger.With(slog.String("trace_id", infrastructure.GetTraceID(ctx)))

	start := time.Now()
	logger.InfoContext(ctx, "report generation started",
		slog.String("data_dir", s.paths.DataDir))

	stadiumPath, err := s.findDatasetFile(StadiumFileBase)
	if err != nil {
		return nil, err
	}
	merchandisePath, err := s.findDatasetFile(MerchandiseFileBase)
	if err != nil {
		return nil, err
	}
	fanbasePath, err := s.findDatasetFile(FanbaseFileBase)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateOutputDirectory(s.paths.ReportsDir); err != nil {
		return nil, errors.NewStorageError("validate reports directory", err)
	}

	stadium, err := s.loader.StadiumOperations(stadiumPath)
	if err != nil {
		return nil, err
	}
	merchandise, err := s.loader.MerchandiseSales(merchandisePath)
	if err != nil {
		return nil, err
	}
	fans, err := s.loader.FanMembers(fanbasePath)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarizer.Summarize(ctx, stadium, merchandise, fans)
	if err != nil {
		return nil, err
	}

	markdown := report.Render(summary)
	if err := os.WriteFile(s.paths.MarkdownReport, markdown, 0644); err != nil {
		return nil, errors.NewStorageError("write markdown report", err)
	}

	if err := s.exporter.ExportAll(summary); err != nil {
		return nil, errors.NewStorageError("export summary tables", err)
	}

	if err := exporter.WriteSummaryJSON(s.paths.SummaryJSON, summary); err != nil {
		return nil, errors.NewStorageError("write summary json", err)
	}

	logger.InfoContext(ctx, "report generation finished",
		slog.String("run_id", summary.RunID),
		slog.Duration("elapsed", time.Since(start)),
		slog.String("markdown_report", s.paths.MarkdownReport))

	return summary, nil
}

// LatestSummary reads back the most recently generated summary JSON.
func (s *ReportService) LatestSummary(ctx context.Context) (*analysis.ClubSummary, error) {
	data, err := os.ReadFile(s.paths.SummaryJSON)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("club summary")
		}
		return nil, errors.NewStorageError("read summary json", err)
	}

	var envelope struct {
		Summary *analysis.ClubSummary `json:"summary"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.NewParsingError("club summary json", err)
	}
	if envelope.Summary == nil {
		return nil, errors.NewParsingError("club summary json", fmt.Errorf("missing summary payload"))
	}

	return envelope.Summary, nil
}

// ReportFile describes one generated report on disk.
type ReportFile struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// ListReports returns the generated report files, newest first.
func (s *ReportService) ListReports(ctx context.Context) ([]ReportFile, error) {
	entries, err := os.ReadDir(s.paths.ReportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ReportFile{}, nil
		}
		return nil, errors.NewStorageError("read reports directory", err)
	}

	var reports []ReportFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".md" && ext != ".csv" && ext != ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.logger.Debug("skipping unreadable report file",
				slog.String("name", entry.Name()),
				slog.String("error", err.Error()))
			continue
		}
		reports = append(reports, ReportFile{
			Name:     entry.Name(),
			Path:     filepath.ToSlash(entry.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Modified.Equal(reports[j].Modified) {
			return reports[i].Name < reports[j].Name
		}
		return reports[i].Modified.After(reports[j].Modified)
	})

	if reports == nil {
		reports = []ReportFile{}
	}
	return reports, nil
}

// MarkdownReport reads back the rendered markdown report.
func (s *ReportService) MarkdownReport(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.paths.MarkdownReport)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("markdown report")
		}
		return nil, errors.NewStorageError("read markdown report", err)
	}
	return data, nil
}

// findDatasetFile resolves a dataset base name to the file actually present
// in the data directory, trying the supported extensions in order.
func (s *ReportService) findDatasetFile(base string) (string, error) {
	for _, ext := range datasetExtensions {
		path := filepath.Join(s.paths.DataDir, base+ext)
		if _, err := os.Stat(path); err == nil {
			if err := s.validator.ValidateDatasetFile(path); err != nil {
				return "", errors.NewValidationError(err.Error())
			}
			return path, nil
		}
	}
	return "", errors.NewMissingDataError(
		fmt.Sprintf("dataset %s not found in %s (tried %s)",
			base, s.paths.DataDir, strings.Join(datasetExtensions, ", ")), nil)
}
