package http

import (
	"context"

	"fcpulse/internal/analysis"
	"fcpulse/internal/services"
)

// ReportServiceInterface defines the report operations the handlers need.
// Defined on the consumer side so tests can substitute a stub.
type ReportServiceInterface interface {
	Generate(ctx context.Context) (*analysis.ClubSummary, error)
	LatestSummary(ctx context.Context) (*analysis.ClubSummary, error)
	ListReports(ctx context.Context) ([]services.ReportFile, error)
	MarkdownReport(ctx context.Context) ([]byte, error)
}

// HealthServiceInterface defines the health check operation.
type HealthServiceInterface interface {
	Check(ctx context.Context) *services.HealthStatus
}
