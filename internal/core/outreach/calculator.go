package outreach

import (
	"fmt"
	"math"
	"strings"

	"outreach-engine/internal/core/domain"
)

// Calculator produces tiered contact plans. It is stateless; every
// input arrives as a value and the output is self-contained.
type Calculator struct {
	params Params
}

// NewCalculator returns a calculator using the given params. Params are
// validated once here rather than on every call.
func NewCalculator(params Params) (*Calculator, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("outreach params: %w", err)
	}
	return &Calculator{params: params}, nil
}

// PlanInput is the validated input to BuildStrategy.
type PlanInput struct {
	BidTarget     int
	TimelineHours float64
	Availability  domain.TierAvailability
	Project       domain.ProjectContext
}

// ClassifyUrgency maps a timeline to its urgency class. Boundaries are
// fixed hour thresholds; exactly one class matches any positive value.
func ClassifyUrgency(timelineHours float64) domain.UrgencyClass {
	switch {
	case timelineHours < 1:
		return domain.UrgencyImmediate
	case timelineHours <= 12:
		return domain.UrgencySameDay
	case timelineHours <= 72:
		return domain.UrgencyStandard
	case timelineHours <= 120:
		return domain.UrgencyExtendedGroup
	default:
		return domain.UrgencyFlexible
	}
}

// BuildStrategy computes the full outreach strategy: urgency class,
// adjusted per-tier response rates, greedy tier allocation, confidence
// score, risk factors, recommendations and the check-in schedule.
func (c *Calculator) BuildStrategy(in PlanInput) (domain.OutreachStrategy, error) {
	if in.BidTarget <= 0 {
		return domain.OutreachStrategy{}, fmt.Errorf("bid target must be positive, got %d", in.BidTarget)
	}
	if in.TimelineHours <= 0 {
		return domain.OutreachStrategy{}, fmt.Errorf("timeline must be positive, got %v", in.TimelineHours)
	}

	urgency := ClassifyUrgency(in.TimelineHours)
	rates := c.AdjustedRates(urgency, in.Project)

	strategy := domain.OutreachStrategy{
		BidTarget:     in.BidTarget,
		TimelineHours: in.TimelineHours,
		Urgency:       urgency,
	}

	// Greedy allocation, tier 1 first: cheapest and most reliable
	// contacts absorb as much of the gap as they can.
	gap := float64(in.BidTarget)
	for i := 0; i < 3; i++ {
		tier := i + 1
		rate := rates[i]
		available := in.Availability.ForTier(tier)
		needed := 0
		if gap > 0 {
			needed = int(math.Ceil(gap / rate))
		}
		contacted := min(available, c.params.TierCeilings[i], needed)
		expected := float64(contacted) * rate
		strategy.Tiers[i] = domain.TierPlan{
			Tier:         tier,
			ResponseRate: rate,
			Available:    available,
			Contacted:    contacted,
			Expected:     expected,
		}
		strategy.TotalContacted += contacted
		strategy.TotalExpected += expected
		gap = math.Max(0, gap-expected)
	}

	strategy.Confidence = c.confidence(strategy.TotalExpected, in.BidTarget, strategy.TotalContacted)
	strategy.RiskFactors = c.riskFactors(strategy)
	strategy.Recommendations = c.recommendations(strategy)
	strategy.CheckIns = ScheduleCheckIns(c.params, in.TimelineHours, urgency, in.BidTarget)
	return strategy, nil
}

// AdjustedRates applies the urgency multiplier, the multi-project bonus
// and project-type keyword adjustments uniformly to all tiers, capping
// the result at MaxEffectiveRate.
func (c *Calculator) AdjustedRates(urgency domain.UrgencyClass, project domain.ProjectContext) [3]float64 {
	multiplier := c.params.UrgencyMultipliers[urgency]
	if multiplier == 0 {
		multiplier = 1
	}
	if project.MultiProject {
		multiplier *= c.params.MultiProjectBonus
	}
	projectType := strings.ToLower(project.ProjectType)
	for keyword, adj := range c.params.ProjectTypeAdjustments {
		if strings.Contains(projectType, keyword) {
			multiplier *= adj
		}
	}

	var rates [3]float64
	for i, base := range c.params.BaseRates {
		rates[i] = math.Min(base*multiplier, c.params.MaxEffectiveRate)
	}
	return rates
}

// confidence scores the plan 0..100 against the bid target.
func (c *Calculator) confidence(expected float64, target, contacted int) int {
	score := math.Min(100, expected/float64(target)*100)
	if contacted > c.params.LargeOutreachThreshold {
		score -= float64(c.params.LargeOutreachPenalty)
	}
	if expected >= c.params.SurplusRatio*float64(target) {
		score = math.Min(100, score*c.params.SurplusBoostFactor)
	}
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

func (c *Calculator) riskFactors(s domain.OutreachStrategy) []string {
	var risks []string
	if s.Confidence < c.params.ConfidenceRiskFloor {
		risks = append(risks, fmt.Sprintf("confidence %d%% is below the %d%% floor", s.Confidence, c.params.ConfidenceRiskFloor))
	}
	if s.Tiers[0].Contacted < c.params.Tier1Minimum {
		risks = append(risks, "fewer than the minimum tier-1 providers are being contacted")
	}
	if s.TotalContacted > 0 {
		share := float64(s.Tiers[2].Contacted) / float64(s.TotalContacted)
		if share > c.params.Tier3MajorityShare {
			risks = append(risks, "majority of outreach relies on cold tier-3 providers")
		}
	}
	if s.Urgency.IsUrgent() {
		risks = append(risks, fmt.Sprintf("timeline is %s; response rates are depressed", s.Urgency))
	}
	for i, tp := range s.Tiers {
		if tp.Contacted == c.params.TierCeilings[i] {
			risks = append(risks, fmt.Sprintf("tier %d is at its capacity ceiling", tp.Tier))
		}
	}
	return risks
}

func (c *Calculator) recommendations(s domain.OutreachStrategy) []string {
	var recs []string
	if s.Confidence < c.params.ConfidenceRiskFloor {
		recs = append(recs, "consider extending the timeline or lowering the bid target")
	}
	if s.TotalExpected < float64(s.BidTarget) {
		recs = append(recs, "expected responses fall short of the target; widen the provider pool")
	}
	if s.Urgency.IsUrgent() {
		recs = append(recs, "enable all contact channels from the start for this timeline")
	}
	if s.TotalContacted > 0 && float64(s.Tiers[2].Contacted)/float64(s.TotalContacted) > c.params.Tier3MajorityShare {
		recs = append(recs, "plan follow-ups: tier-3 providers respond slowly")
	}
	if len(recs) == 0 {
		recs = append(recs, "plan looks healthy; monitor check-ins as scheduled")
	}
	return recs
}
