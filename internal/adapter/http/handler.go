package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"outreach-engine/internal/core/port"
	"outreach-engine/internal/metrics"
)

// Handler is the inbound HTTP adapter. It holds the engine to execute
// business logic and a logger for structured logging; routes are
// registered on a chi.Router.
type Handler struct {
	engine port.OutreachEngine
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The manual
// check-in evaluation endpoint shares the exact evaluation path the
// monitor loop uses.
func NewHandler(engine port.OutreachEngine, logger *slog.Logger) *Handler {
	h := &Handler{engine: engine, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/{id}/status", h.handleCampaignStatus)
		r.Post("/campaigns/{id}/check-ins/{ordinal}/evaluate", h.handleEvaluateCheckIn)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeError maps engine errors onto HTTP status codes. Only invalid
// input details are echoed back; everything else gets a generic body.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, port.ErrOrderViolation), errors.Is(err, port.ErrCampaignInactive):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, port.ErrDataUnavailable):
		http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
