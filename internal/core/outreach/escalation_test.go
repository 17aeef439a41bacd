package outreach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/outreach"
)

func TestSeverityCutoffs(t *testing.T) {
	tests := map[string]struct {
		ratio    float64
		expected domain.EscalationLevel
	}{
		"WellAhead":          {95, domain.EscalationNone},
		"ExactlyNinety":      {90, domain.EscalationNone},
		"JustUnderNinety":    {89.9, domain.EscalationMild},
		"Eighty":             {80, domain.EscalationMild},
		"ExactlySeventyFive": {75, domain.EscalationMild},
		"Sixty":              {60, domain.EscalationModerate},
		"ExactlyFifty":       {50, domain.EscalationModerate},
		"Thirty":             {30, domain.EscalationSevere},
		"ExactlyTwentyFive":  {25, domain.EscalationSevere},
		"Ten":                {10, domain.EscalationCritical},
		"Zero":               {0, domain.EscalationCritical},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, outreach.SeverityFor(tc.ratio))
		})
	}
}

func TestPerformanceRatio(t *testing.T) {
	assert.Equal(t, float64(100), outreach.PerformanceRatio(0, 0), "zero expectation never escalates")
	assert.Equal(t, float64(100), outreach.PerformanceRatio(3, 0))
	assert.Equal(t, float64(0), outreach.PerformanceRatio(0, 2))
	assert.Equal(t, float64(50), outreach.PerformanceRatio(1, 2))
	assert.Equal(t, float64(150), outreach.PerformanceRatio(3, 2))
}

// TestCriticalCheckpoint covers a checkpoint with two expected bids and
// none received: critical severity, two tier-2 providers requested.
func TestCriticalCheckpoint(t *testing.T) {
	params := outreach.DefaultParams()

	ev := outreach.Evaluate(params, 1, 0, 2, [3]int{5, 1, 0})
	assert.Equal(t, float64(0), ev.PerformanceRatio)
	assert.Equal(t, domain.EscalationCritical, ev.Level)
	assert.False(t, ev.OnTrack)
	assert.Equal(t, 2, ev.Replenishment.Tier2) // min(gap 2, cap 4, room 24)
	assert.Equal(t, 0, ev.Replenishment.Tier3)
}

func TestReplenishmentSpillsIntoTierThree(t *testing.T) {
	params := outreach.DefaultParams()

	// gap of 10 exceeds the tier-2 per-escalation cap of 4.
	ev := outreach.Evaluate(params, 2, 0, 10, [3]int{5, 0, 0})
	assert.Equal(t, 4, ev.Replenishment.Tier2)
	assert.Equal(t, 6, ev.Replenishment.Tier3)
	assert.Equal(t, 10, ev.Replenishment.Total())
}

func TestReplenishmentRespectsLifetimeCeilings(t *testing.T) {
	params := outreach.DefaultParams()

	// tier 2 has one slot left before its ceiling of 25; tier 3 has two
	// before 50.
	ev := outreach.Evaluate(params, 2, 0, 10, [3]int{5, 24, 48})
	assert.Equal(t, 1, ev.Replenishment.Tier2)
	assert.Equal(t, 2, ev.Replenishment.Tier3)
}

func TestOnTrackCheckpointDoesNotReplenish(t *testing.T) {
	params := outreach.DefaultParams()

	ev := outreach.Evaluate(params, 1, 2, 2, [3]int{5, 0, 0})
	assert.Equal(t, domain.EscalationNone, ev.Level)
	assert.True(t, ev.OnTrack)
	assert.Equal(t, 0, ev.Replenishment.Total())
	assert.Equal(t, "progress on track; no action needed", ev.Recommendation)
}

func TestMildIsBehindButOnTrack(t *testing.T) {
	params := outreach.DefaultParams()

	// ratio 80: mild escalation but still flagged on track.
	ev := outreach.Evaluate(params, 1, 4, 5, [3]int{5, 0, 0})
	assert.Equal(t, domain.EscalationMild, ev.Level)
	assert.True(t, ev.OnTrack)
	assert.Equal(t, 1, ev.Replenishment.Tier2)
}

func TestFinalCheckpointRecommendation(t *testing.T) {
	params := outreach.DefaultParams()

	early := outreach.Evaluate(params, 1, 0, 4, [3]int{0, 0, 0})
	final := outreach.Evaluate(params, 3, 0, 4, [3]int{0, 0, 0})
	assert.NotEqual(t, early.Recommendation, final.Recommendation)
	assert.Contains(t, final.Recommendation, "all available resources")
}
