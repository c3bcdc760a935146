package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"fcpulse/internal/config"
	"fcpulse/internal/infrastructure"
	"fcpulse/internal/services"
	handlers "fcpulse/internal/transport/http"
)

const (
	Version = "1.0.0"
	AppName = "FC Pulse - Club Performance Reports"
)

// Application is the container for the report server: configuration,
// services, router and the HTTP server itself.
type Application struct {
	Config        *config.Config
	Paths         *config.Paths
	Logger        *slog.Logger
	Router        chi.Router
	Server        *http.Server
	ReportService *services.ReportService
	HealthService *services.HealthService
}

// NewApplication creates the application with all dependencies wired.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get paths: %w", err)
	}
	if cfg.Paths.DataDir != "" {
		paths.DataDir = cfg.Paths.DataDir
	}
	if cfg.Paths.ReportsDir != "" {
		paths.ReportsDir = cfg.Paths.ReportsDir
		paths.MarkdownReport = paths.GetReportPath("club_performance_report.md")
		paths.SummaryJSON = paths.GetReportPath("club_summary.json")
	}
	if cfg.Paths.LogsDir != "" {
		paths.LogsDir = cfg.Paths.LogsDir
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	reportService := services.NewReportService(paths, cfg.Analysis.MissingTolerance, logger)
	healthService := services.NewHealthService(Version, paths, logger)

	router := handlers.NewRouter(handlers.RouterConfig{
		ReportService: reportService,
		HealthService: healthService,
		ReportsDir:    paths.ReportsDir,
		Logger:        logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Application{
		Config:        cfg,
		Paths:         paths,
		Logger:        logger,
		Router:        router,
		Server:        server,
		ReportService: reportService,
		HealthService: healthService,
	}, nil
}

// Start begins serving HTTP requests.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "HTTP server starting",
		slog.String("addr", a.Server.Addr),
		slog.String("reports_dir", a.Paths.ReportsDir))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.Error("HTTP server failed", slog.String("error", err.Error()))
			cancel()
		}
	}()

	return nil
}

// Shutdown stops the server gracefully within the configured timeout.
func (a *Application) Shutdown(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Application shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		a.Logger.Error("Error closing log file", slog.String("error", err.Error()))
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run starts the application and blocks until an interrupt arrives.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case sig := <-sigChan:
		a.Logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
	}

	return a.Shutdown(context.Background())
}
