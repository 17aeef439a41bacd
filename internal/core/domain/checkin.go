package domain

import "time"

// CheckIn is a persisted progress checkpoint. All three are created
// pending when the campaign starts; each is completed exactly once, in
// ordinal order, and never reopened.
type CheckIn struct {
	ID               string
	CampaignID       string
	Ordinal          int // 1..3
	Fraction         float64
	ScheduledAt      time.Time
	ExpectedBids     int
	ActualBids       *int
	OnTrack          *bool
	EscalationNeeded *bool
	CompletedAt      *time.Time
}

func (c CheckIn) IsCompleted() bool {
	return c.CompletedAt != nil
}

// IsDue reports whether the checkpoint should be evaluated as of now.
func (c CheckIn) IsDue(now time.Time) bool {
	return !c.IsCompleted() && !now.Before(c.ScheduledAt)
}

// FinalOrdinal is the last checkpoint of a campaign. Its escalation
// recommendations are worded more aggressively than earlier ones.
const FinalOrdinal = 3
