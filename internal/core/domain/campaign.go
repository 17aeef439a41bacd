package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign. Transitions only
// move forward: draft -> active -> completed or failed.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignFailed    CampaignStatus = "failed"
)

func (s CampaignStatus) IsTerminal() bool {
	return s == CampaignCompleted || s == CampaignFailed
}

// CanTransitionTo reports whether moving to next is a legal forward
// transition.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	switch s {
	case CampaignDraft:
		return next == CampaignActive
	case CampaignActive:
		return next.IsTerminal()
	}
	return false
}

// Campaign is an outreach campaign soliciting bids from providers. The
// strategy computed at creation time is stored as a snapshot; later
// escalations consult it for tier ceilings and already-contacted counts.
type Campaign struct {
	ID            string
	BidTarget     int
	TimelineHours float64
	Strategy      OutreachStrategy
	Status        CampaignStatus
	Project       ProjectContext
	CreatedAt     time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

// Deadline is the instant the campaign timeline ends, relative to when
// the campaign was started. Falls back to CreatedAt for drafts.
func (c Campaign) Deadline() time.Time {
	base := c.CreatedAt
	if c.StartedAt != nil {
		base = *c.StartedAt
	}
	return base.Add(time.Duration(c.TimelineHours * float64(time.Hour)))
}

// ProjectContext describes the job the campaign solicits bids for. The
// engine only inspects the type tag and the multi-project flag; the rest
// is passed through to provider selection.
type ProjectContext struct {
	ProjectType  string
	MultiProject bool
	Region       string
}
