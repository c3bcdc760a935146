package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "fcpulse/internal/errors"
)

// ReportHandler handles report-related HTTP requests
type ReportHandler struct {
	service ReportServiceInterface
	logger  *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ReportServiceInterface, logger *slog.Logger) *ReportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportHandler{
		service: service,
		logger:  logger.With(slog.String("component", "report_handler")),
	}
}

// Routes returns the report routes
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListReports)
	r.Post("/generate", h.Generate)
	r.Get("/summary", h.GetSummary)
	r.Get("/markdown", h.GetMarkdown)

	return r
}

// generateResponse is the payload returned after a successful run
type generateResponse struct {
	Success bool    `json:"success"`
	RunID   string  `json:"run_id"`
	Revenue float64 `json:"combined_revenue"`
}

// Generate runs a full report generation pass
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Generate(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "report generated via API",
		slog.String("run_id", summary.RunID))

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, generateResponse{
		Success: true,
		RunID:   summary.RunID,
		Revenue: summary.Revenue.CombinedTotal,
	})
}

// GetSummary returns the latest club summary
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.LatestSummary(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	render.JSON(w, r, summary)
}

// ListReports returns the generated report files
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.ListReports(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}

// GetMarkdown serves the rendered markdown report as text
func (h *ReportHandler) GetMarkdown(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.MarkdownReport(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *ReportHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apierrors.FromError(err)

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", apiErr.StatusCode),
		slog.String("error", err.Error()))

	render.Render(w, r, apierrors.NewErrorResponse(apiErr))
}
