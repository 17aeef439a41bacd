package outreach

import (
	"fmt"

	"outreach-engine/internal/core/domain"
)

// Evaluation is the outcome of comparing actual to expected bids at a
// checkpoint.
type Evaluation struct {
	PerformanceRatio float64
	Level            domain.EscalationLevel
	OnTrack          bool
	Replenishment    Replenishment
	Recommendation   string
}

// Replenishment is the additional outreach an escalation asks for.
// Tier 1 is never replenished reactively; its providers are assumed
// exhausted by the time a checkpoint trails.
type Replenishment struct {
	Tier2 int
	Tier3 int
}

func (r Replenishment) Total() int { return r.Tier2 + r.Tier3 }

// PerformanceRatio is actual over expected as a percentage. A zero
// expectation yields 100 so a zero-expectation checkpoint never
// escalates.
func PerformanceRatio(actual, expected int) float64 {
	if expected <= 0 {
		return 100
	}
	return float64(actual) / float64(expected) * 100
}

// SeverityFor maps a performance ratio onto the escalation ladder. The
// cutoffs are fixed and non-overlapping: 90, 75, 50, 25.
func SeverityFor(ratio float64) domain.EscalationLevel {
	switch {
	case ratio >= 90:
		return domain.EscalationNone
	case ratio >= 75:
		return domain.EscalationMild
	case ratio >= 50:
		return domain.EscalationModerate
	case ratio >= 25:
		return domain.EscalationSevere
	default:
		return domain.EscalationCritical
	}
}

// Evaluate runs the checkpoint state transition: ratio, severity and,
// when behind, the per-tier replenishment plan. alreadyContacted counts
// providers contacted so far per tier (initial plan plus earlier
// escalations) and bounds replenishment by the lifetime tier ceilings.
func Evaluate(params Params, ordinal, actual, expected int, alreadyContacted [3]int) Evaluation {
	ratio := PerformanceRatio(actual, expected)
	level := SeverityFor(ratio)
	ev := Evaluation{
		PerformanceRatio: ratio,
		Level:            level,
		OnTrack:          ratio >= 75,
		Recommendation:   RecommendationFor(level, ordinal),
	}
	if level == domain.EscalationNone {
		return ev
	}

	// Prefer tier 2 up to the per-escalation cap, spill the remainder
	// into tier 3. Both are bounded by what the lifetime ceiling still
	// allows.
	gap := expected - actual
	tier2Room := max(0, params.TierCeilings[1]-alreadyContacted[1])
	tier3Room := max(0, params.TierCeilings[2]-alreadyContacted[2])
	ev.Replenishment.Tier2 = min(gap, params.Tier2ReplenishCap, tier2Room)
	ev.Replenishment.Tier3 = min(gap-ev.Replenishment.Tier2, tier3Room)
	return ev
}

// RecommendationFor words the operator guidance by severity and by how
// late in the campaign the checkpoint falls. Early checkpoints warn
// softly; the final one asks for everything available. The wording is
// deterministic so a repeated evaluation reproduces it exactly.
func RecommendationFor(level domain.EscalationLevel, ordinal int) string {
	if level == domain.EscalationNone {
		return "progress on track; no action needed"
	}
	if ordinal >= domain.FinalOrdinal {
		return fmt.Sprintf("final checkpoint at %s severity: use all available resources, including manual phone outreach", level)
	}
	switch level {
	case domain.EscalationMild:
		return "slightly behind expectation; watch the next checkpoint"
	case domain.EscalationModerate:
		return "behind expectation; adding tier-2 providers"
	case domain.EscalationSevere:
		return "well behind expectation; adding providers and widening channels"
	default:
		return "no meaningful progress; escalating to operators and all remaining providers"
	}
}
