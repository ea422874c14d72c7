package handler

import (
	"net/http"

	"pico-pos/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ReportHandler handles dashboard requests.
type ReportHandler struct {
	service service.ReportService
	logger  zerolog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With().Str("handler", "report").Logger(),
	}
}

func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/summary", h.Summary)
	r.Post("/insight", h.Insight)
	r.Post("/analysis", h.Analysis)
	r.Post("/forecast", h.Forecast)
	r.Get("/credits", h.Credits)
}

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Summary(r.Context()))
}

// Insight handles POST /api/reports/insight requests. Each call spends AI credits.
func (h *ReportHandler) Insight(w http.ResponseWriter, r *http.Request) {
	insight, err := h.service.Insight(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, insight)
}

// Analysis handles POST /api/reports/analysis requests for one credit.
func (h *ReportHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.service.Analysis(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (h *ReportHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	forecast, err := h.service.Forecast(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, forecast)
}

func (h *ReportHandler) Credits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Credits(r.Context()))
}
