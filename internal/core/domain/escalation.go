package domain

import "time"

// EscalationLevel orders escalation severity. Levels are strictly
// monotonic in the performance ratio: the worse the ratio, the higher
// the level.
type EscalationLevel int

const (
	EscalationNone EscalationLevel = iota
	EscalationMild
	EscalationModerate
	EscalationSevere
	EscalationCritical
)

func (l EscalationLevel) String() string {
	switch l {
	case EscalationNone:
		return "none"
	case EscalationMild:
		return "mild"
	case EscalationModerate:
		return "moderate"
	case EscalationSevere:
		return "severe"
	case EscalationCritical:
		return "critical"
	}
	return "unknown"
}

// EscalationRecord is the append-only audit entry written when a
// completed check-in triggered escalation.
type EscalationRecord struct {
	ID               string
	CampaignID       string
	CheckInOrdinal   int
	Level            EscalationLevel
	PerformanceRatio float64
	Actions          []ContactAction
	Recommendation   string
	CreatedAt        time.Time
}

// ContactAction records one provider added during escalation and the
// channel that finally reached them. Channel is empty when every
// channel attempt failed.
type ContactAction struct {
	Provider ProviderHandle `json:"provider"`
	Tier     int            `json:"tier"`
	Channel  Channel        `json:"channel,omitempty"`
	Failed   bool           `json:"failed,omitempty"`
	Reason   string         `json:"reason,omitempty"`
}
