package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fcpulse/internal/analysis"
)

// summaryEnvelope wraps the club summary with export metadata so consumers
// can tell report versions apart.
type summaryEnvelope struct {
	Format      string                `json:"format"`
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Summary     *analysis.ClubSummary `json:"summary"`
}

// summaryFormatVersion identifies the JSON envelope shape.
const summaryFormatVersion = "fcpulse-summary-v1"

// WriteSummaryJSON writes the full club summary to the given path as
// indented JSON.
func WriteSummaryJSON(path string, summary *analysis.ClubSummary) error {
	slog.Info("Writing summary JSON",
		slog.String("path", path),
		slog.String("run_id", summary.RunID))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	envelope := summaryEnvelope{
		Format:      summaryFormatVersion,
		RunID:       summary.RunID,
		GeneratedAt: summary.GeneratedAt,
		Summary:     summary,
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}

	return nil
}
