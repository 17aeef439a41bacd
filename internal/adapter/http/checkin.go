package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"outreach-engine/internal/core/domain"
)

type evaluationResponse struct {
	CampaignID       string                 `json:"campaign_id"`
	Ordinal          int                    `json:"ordinal"`
	PerformanceRatio float64                `json:"performance_ratio"`
	Level            string                 `json:"level"`
	OnTrack          bool                   `json:"on_track"`
	Recommendation   string                 `json:"recommendation,omitempty"`
	Actions          []domain.ContactAction `json:"actions,omitempty"`
	AlreadyCompleted bool                   `json:"already_completed"`
	CampaignStatus   string                 `json:"campaign_status"`
}

// handleEvaluateCheckIn triggers an ad-hoc evaluation of one check-in,
// the manual counterpart to the monitor loop. Repeated calls on a
// completed check-in are idempotent and return the stored result.
func (h *Handler) handleEvaluateCheckIn(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	ordinal, err := strconv.Atoi(chi.URLParam(r, "ordinal"))
	if err != nil || ordinal < 1 || ordinal > domain.FinalOrdinal {
		http.Error(w, "invalid ordinal", http.StatusBadRequest)
		return
	}

	res, err := h.engine.EvaluateCheckIn(r.Context(), campaignID, ordinal)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(evaluationResponse{
		CampaignID:       res.CampaignID,
		Ordinal:          res.Ordinal,
		PerformanceRatio: res.PerformanceRatio,
		Level:            res.Level.String(),
		OnTrack:          res.OnTrack,
		Recommendation:   res.Recommendation,
		Actions:          res.Actions,
		AlreadyCompleted: res.AlreadyCompleted,
		CampaignStatus:   string(res.CampaignStatus),
	}); err != nil {
		h.logger.Error("encode response error", "error", err)
	}
}
