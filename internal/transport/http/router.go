package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fcpulse/internal/infrastructure"
)

// RouterConfig carries the dependencies the router needs.
type RouterConfig struct {
	ReportService ReportServiceInterface
	HealthService HealthServiceInterface
	ReportsDir    string
	Logger        *slog.Logger
}

// NewRouter assembles the API router. Generated report files are also
// served statically under /files/ so browsers can download them directly.
func NewRouter(cfg RouterConfig) chi.Router {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(traceIDMiddleware)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	reportHandler := NewReportHandler(cfg.ReportService, logger)
	healthHandler := NewHealthHandler(cfg.HealthService, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)
		r.Mount("/reports", reportHandler.Routes())
	})

	if cfg.ReportsDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.ReportsDir))
		r.Handle("/files/*", http.StripPrefix("/files/", fileServer))
	}

	return r
}

// traceIDMiddleware ensures every request context carries a trace ID.
func traceIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := infrastructure.EnsureTraceID(r.Context())
		w.Header().Set("X-Trace-ID", infrastructure.GetTraceID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger logs one line per request with method, path and duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
