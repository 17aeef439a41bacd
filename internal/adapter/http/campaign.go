package httpadapter

import (
	"encoding/json"
	"net/http"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
)

// createCampaignRequest is the JSON body for campaign creation. Tier
// availability is optional; when absent the engine queries the
// availability source.
type createCampaignRequest struct {
	BidTarget     int     `json:"bid_target"`
	TimelineHours float64 `json:"timeline_hours"`
	ProjectType   string  `json:"project_type"`
	MultiProject  bool    `json:"multi_project"`
	Region        string  `json:"region"`
	Availability  struct {
		Tier1 int `json:"tier1"`
		Tier2 int `json:"tier2"`
		Tier3 int `json:"tier3"`
	} `json:"availability"`
}

type createCampaignResponse struct {
	CampaignID string                  `json:"campaign_id"`
	Strategy   domain.OutreachStrategy `json:"strategy"`
}

// handleCreateCampaign creates and activates a campaign. Invalid
// targets or timelines produce HTTP 400; on success the computed
// strategy is returned.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	resp, err := h.engine.CreateCampaign(r.Context(), port.CreateCampaignReq{
		BidTarget:     req.BidTarget,
		TimelineHours: req.TimelineHours,
		Availability: domain.TierAvailability{
			Tier1: req.Availability.Tier1,
			Tier2: req.Availability.Tier2,
			Tier3: req.Availability.Tier3,
		},
		Project: domain.ProjectContext{
			ProjectType:  req.ProjectType,
			MultiProject: req.MultiProject,
			Region:       req.Region,
		},
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(createCampaignResponse{
		CampaignID: resp.CampaignID,
		Strategy:   resp.Strategy,
	}); err != nil {
		h.logger.Error("encode response error", "error", err)
	}
}
