package services

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"fcpulse/internal/config"
)

// HealthService provides health check functionality for the report server
type HealthService struct {
	version   string
	paths     *config.Paths
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Checks    map[string]string      `json:"checks,omitempty"`
}

// NewHealthService creates a new health service
func NewHealthService(version string, paths *config.Paths, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("HealthService initialized",
		slog.String("version", version))

	return &HealthService{
		version:   version,
		paths:     paths,
		startTime: time.Now(),
		logger:    logger,
	}
}

// Check reports overall health. The service is degraded when the data
// directory is missing, since report generation cannot run without it.
func (h *HealthService) Check(ctx context.Context) *HealthStatus {
	checks := map[string]string{
		"data_dir":    h.checkDirectory(h.paths.DataDir),
		"reports_dir": h.checkDirectory(h.paths.ReportsDir),
	}

	status := "healthy"
	for _, result := range checks {
		if result != "ok" {
			status = "degraded"
			break
		}
	}

	return &HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Runtime: map[string]interface{}{
			"uptime_seconds": time.Since(h.startTime).Seconds(),
			"go_version":     runtime.Version(),
			"os":             runtime.GOOS,
			"arch":           runtime.GOARCH,
		},
		Checks: checks,
	}
}

func (h *HealthService) checkDirectory(dir string) string {
	info, err := os.Stat(dir)
	if err != nil {
		return "missing"
	}
	if !info.IsDir() {
		return "not a directory"
	}
	return "ok"
}
