package outreach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/outreach"
)

func TestClassifyUrgency(t *testing.T) {
	tests := map[string]struct {
		hours    float64
		expected domain.UrgencyClass
	}{
		"UnderAnHour":        {0.5, domain.UrgencyImmediate},
		"ExactlyOneHour":     {1, domain.UrgencySameDay},
		"TwelveHours":        {12, domain.UrgencySameDay},
		"JustOverTwelve":     {12.5, domain.UrgencyStandard},
		"ThreeDays":          {72, domain.UrgencyStandard},
		"FourDays":           {96, domain.UrgencyExtendedGroup},
		"FiveDays":           {120, domain.UrgencyExtendedGroup},
		"OverFiveDays":       {121, domain.UrgencyFlexible},
		"TwoWeeks":           {336, domain.UrgencyFlexible},
		"StandardTwentyFour": {24, domain.UrgencyStandard},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, outreach.ClassifyUrgency(tc.hours))
		})
	}
}

func TestBuildStrategyInvalidInput(t *testing.T) {
	calc, err := outreach.NewCalculator(outreach.DefaultParams())
	require.NoError(t, err)

	_, err = calc.BuildStrategy(outreach.PlanInput{BidTarget: 0, TimelineHours: 24})
	assert.Error(t, err)

	_, err = calc.BuildStrategy(outreach.PlanInput{BidTarget: 4, TimelineHours: -1})
	assert.Error(t, err)
}

// TestKitchenRemodelScenario follows a concrete 24h campaign for four
// bids with a "kitchen remodel" project type.
func TestKitchenRemodelScenario(t *testing.T) {
	calc, err := outreach.NewCalculator(outreach.DefaultParams())
	require.NoError(t, err)

	s, err := calc.BuildStrategy(outreach.PlanInput{
		BidTarget:     4,
		TimelineHours: 24,
		Availability:  domain.TierAvailability{Tier1: 5, Tier2: 20, Tier3: 100},
		Project:       domain.ProjectContext{ProjectType: "kitchen remodel"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.UrgencyStandard, s.Urgency)

	// tier 1: rate 0.75 * 1.05 = 0.7875, needed ceil(4/0.7875) = 6,
	// capped by availability at 5.
	assert.InDelta(t, 0.7875, s.Tiers[0].ResponseRate, 1e-9)
	assert.Equal(t, 5, s.Tiers[0].Contacted)

	// tier 2 closes the residual gap with a single provider.
	assert.Equal(t, 1, s.Tiers[1].Contacted)
	assert.Equal(t, 0, s.Tiers[2].Contacted)
	assert.Equal(t, 6, s.TotalContacted)

	// expected responses must carry the confidence score.
	assert.GreaterOrEqual(t, s.TotalExpected, float64(s.BidTarget)*float64(s.Confidence)/100)
	assert.Equal(t, 100, s.Confidence)
}

func TestBuildStrategyAllocationInvariants(t *testing.T) {
	params := outreach.DefaultParams()
	calc, err := outreach.NewCalculator(params)
	require.NoError(t, err)

	tests := map[string]outreach.PlanInput{
		"Tiny":         {BidTarget: 1, TimelineHours: 2, Availability: domain.TierAvailability{Tier1: 1}},
		"NoTierOne":    {BidTarget: 6, TimelineHours: 48, Availability: domain.TierAvailability{Tier2: 30, Tier3: 200}},
		"Huge":         {BidTarget: 20, TimelineHours: 24, Availability: domain.TierAvailability{Tier1: 50, Tier2: 100, Tier3: 400}},
		"Unreachable":  {BidTarget: 50, TimelineHours: 0.5, Availability: domain.TierAvailability{Tier1: 2, Tier2: 3, Tier3: 4}},
		"MultiProject": {BidTarget: 4, TimelineHours: 200, Availability: domain.TierAvailability{Tier1: 8, Tier2: 8, Tier3: 8}, Project: domain.ProjectContext{MultiProject: true}},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := calc.BuildStrategy(in)
			require.NoError(t, err)

			sum := 0
			for i, tp := range s.Tiers {
				sum += tp.Contacted
				assert.LessOrEqual(t, tp.Contacted, tp.Available, "tier %d exceeds availability", tp.Tier)
				assert.LessOrEqual(t, tp.Contacted, params.TierCeilings[i], "tier %d exceeds ceiling", tp.Tier)
				assert.LessOrEqual(t, tp.ResponseRate, params.MaxEffectiveRate)
			}
			assert.Equal(t, sum, s.TotalContacted)
			assert.GreaterOrEqual(t, s.Confidence, 0)
			assert.LessOrEqual(t, s.Confidence, 100)
			assert.Len(t, s.CheckIns, 3)
		})
	}
}

func TestAdjustedRatesCapped(t *testing.T) {
	params := outreach.DefaultParams()
	calc, err := outreach.NewCalculator(params)
	require.NoError(t, err)

	// flexible * multi-project = 1.2 * 1.15 = 1.38, which would push
	// tier 1 past 1.0 without the cap.
	rates := calc.AdjustedRates(domain.UrgencyFlexible, domain.ProjectContext{MultiProject: true})
	assert.Equal(t, params.MaxEffectiveRate, rates[0])
	assert.InDelta(t, 0.40*1.38, rates[1], 1e-9)
}

func TestLargeOutreachPenaltyAndRisks(t *testing.T) {
	calc, err := outreach.NewCalculator(outreach.DefaultParams())
	require.NoError(t, err)

	s, err := calc.BuildStrategy(outreach.PlanInput{
		BidTarget:     20,
		TimelineHours: 24,
		Availability:  domain.TierAvailability{Tier1: 0, Tier2: 100, Tier3: 100},
	})
	require.NoError(t, err)

	// tier 2 fills to its ceiling of 25 (10 expected), tier 3 to 50
	// (7.5 expected): 75 contacted trips the large-outreach penalty.
	assert.Equal(t, 75, s.TotalContacted)
	assert.Equal(t, 78, s.Confidence) // 87.5 - 10, rounded

	assert.Contains(t, s.RiskFactors, "fewer than the minimum tier-1 providers are being contacted")
	assert.Contains(t, s.RiskFactors, "majority of outreach relies on cold tier-3 providers")
	assert.Contains(t, s.RiskFactors, "tier 2 is at its capacity ceiling")
	assert.Contains(t, s.RiskFactors, "tier 3 is at its capacity ceiling")
	assert.NotEmpty(t, s.Recommendations)
}

func TestUrgentTimelineRiskAndRecommendation(t *testing.T) {
	calc, err := outreach.NewCalculator(outreach.DefaultParams())
	require.NoError(t, err)

	s, err := calc.BuildStrategy(outreach.PlanInput{
		BidTarget:     4,
		TimelineHours: 6,
		Availability:  domain.TierAvailability{Tier1: 10, Tier2: 10, Tier3: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.UrgencySameDay, s.Urgency)
	assert.Contains(t, s.RiskFactors, "timeline is same_day; response rates are depressed")
	assert.Contains(t, s.Recommendations, "enable all contact channels from the start for this timeline")
}
