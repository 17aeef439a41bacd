package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"outreach-engine/internal/core/domain"
)

type statusResponse struct {
	CampaignID     string                    `json:"campaign_id"`
	Status         string                    `json:"status"`
	BidTarget      int                       `json:"bid_target"`
	Deadline       time.Time                 `json:"deadline"`
	TotalContacted int                       `json:"total_contacted"`
	BidsReceived   int                       `json:"bids_received"`
	Responses      int                       `json:"responses_received"`
	Confidence     int                       `json:"confidence"`
	CheckIns       []domain.CheckIn          `json:"check_ins"`
	Escalations    []domain.EscalationRecord `json:"escalations,omitempty"`
}

// handleCampaignStatus returns the aggregated campaign report: plan
// totals, live progress and the full check-in and escalation history.
func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")

	report, err := h.engine.GetCampaignStatus(r.Context(), campaignID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(statusResponse{
		CampaignID:     report.CampaignID,
		Status:         string(report.Status),
		BidTarget:      report.BidTarget,
		Deadline:       report.Deadline,
		TotalContacted: report.TotalContacted,
		BidsReceived:   report.Progress.BidsReceived,
		Responses:      report.Progress.ResponsesReceived,
		Confidence:     report.Confidence,
		CheckIns:       report.CheckIns,
		Escalations:    report.Escalations,
	}); err != nil {
		h.logger.Error("encode response error", "error", err)
	}
}
