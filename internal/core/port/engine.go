package port

import (
	"context"
	"time"

	"outreach-engine/internal/core/domain"
)

// OutreachEngine defines the business operations exposed by the engine.
// This is the primary port into the application domain; mock
// implementations are generated from it for testing.
type OutreachEngine interface {
	// CreateCampaign validates the request, computes a tiered outreach
	// strategy, persists the campaign with its check-in schedule and
	// activates it. Invalid targets or timelines return ErrInvalidInput.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*CreateCampaignResp, error)

	// EvaluateCheckIn evaluates one due check-in: compares actual to
	// expected bids, escalates when behind and completes the check-in.
	// Evaluating an already-completed check-in returns the stored result
	// without dispatching anything. ErrOrderViolation is returned while
	// an earlier ordinal is pending; ErrDataUnavailable leaves the
	// check-in pending for a later retry.
	EvaluateCheckIn(ctx context.Context, campaignID string, ordinal int) (*EvaluationResult, error)

	// GetCampaignStatus aggregates campaign state, progress and
	// check-in history into a report.
	GetCampaignStatus(ctx context.Context, campaignID string) (*CampaignStatusReport, error)
}

// CreateCampaignReq carries campaign creation input. Availability may
// be left zero to have the engine query the availability source.
type CreateCampaignReq struct {
	BidTarget     int
	TimelineHours float64
	Availability  domain.TierAvailability
	Project       domain.ProjectContext
}

type CreateCampaignResp struct {
	CampaignID string
	Strategy   domain.OutreachStrategy
}

// EvaluationResult is returned by EvaluateCheckIn for both fresh and
// repeated evaluations.
type EvaluationResult struct {
	CampaignID       string
	Ordinal          int
	PerformanceRatio float64
	Level            domain.EscalationLevel
	OnTrack          bool
	Recommendation   string
	Actions          []domain.ContactAction
	AlreadyCompleted bool
	CampaignStatus   domain.CampaignStatus
}

// CampaignStatusReport aggregates live campaign metrics for operators.
type CampaignStatusReport struct {
	CampaignID     string
	Status         domain.CampaignStatus
	BidTarget      int
	Deadline       time.Time
	TotalContacted int
	Progress       domain.Progress
	Confidence     int
	CheckIns       []domain.CheckIn
	Escalations    []domain.EscalationRecord
}
