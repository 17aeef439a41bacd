package outreach

import (
	"fmt"

	"outreach-engine/internal/core/domain"
)

// Params holds the tunable constants of the outreach model. Response
// rates are configured, not learned. DefaultParams returns the
// production values; tests may shrink them.
type Params struct {
	// BaseRates are the per-tier base response rates, index 0 = tier 1.
	BaseRates [3]float64
	// TierCeilings cap how many providers a tier may be asked across the
	// whole campaign, escalations included.
	TierCeilings [3]int
	// MaxEffectiveRate caps the adjusted response rate after all
	// multipliers.
	MaxEffectiveRate float64

	// UrgencyMultipliers scale response rates per urgency class.
	UrgencyMultipliers map[domain.UrgencyClass]float64
	// MultiProjectBonus applies when a client has multiple projects out.
	MultiProjectBonus float64
	// ProjectTypeAdjustments maps a keyword found in the project type to
	// a rate multiplier.
	ProjectTypeAdjustments map[string]float64

	// LargeOutreachThreshold triggers a confidence penalty when total
	// contacted exceeds it.
	LargeOutreachThreshold int
	LargeOutreachPenalty   int
	// SurplusBoostFactor boosts confidence when expected responses reach
	// SurplusRatio times the target.
	SurplusRatio       float64
	SurplusBoostFactor float64

	// ConfidenceRiskFloor and Tier1Minimum feed risk-factor rules.
	ConfidenceRiskFloor int
	Tier1Minimum        int
	Tier3MajorityShare  float64

	// CheckInFractions per urgency class, three strictly increasing
	// fractions of the timeline, all below 1.
	CheckInFractions map[domain.UrgencyClass][3]float64

	// Tier2ReplenishCap bounds how many tier-2 providers a single
	// escalation may add before spilling into tier 3.
	Tier2ReplenishCap int
}

// DefaultParams returns the standard model constants.
func DefaultParams() Params {
	return Params{
		BaseRates:        [3]float64{0.75, 0.40, 0.15},
		TierCeilings:     [3]int{10, 25, 50},
		MaxEffectiveRate: 0.95,
		UrgencyMultipliers: map[domain.UrgencyClass]float64{
			domain.UrgencyImmediate:     0.70,
			domain.UrgencySameDay:       0.85,
			domain.UrgencyStandard:      1.00,
			domain.UrgencyExtendedGroup: 1.10,
			domain.UrgencyFlexible:      1.20,
		},
		MultiProjectBonus: 1.15,
		ProjectTypeAdjustments: map[string]float64{
			"emergency":  0.90,
			"repair":     0.90,
			"remodel":    1.05,
			"renovation": 1.05,
		},
		LargeOutreachThreshold: 40,
		LargeOutreachPenalty:   10,
		SurplusRatio:           1.5,
		SurplusBoostFactor:     1.10,
		ConfidenceRiskFloor:    70,
		Tier1Minimum:           2,
		Tier3MajorityShare:     0.5,
		CheckInFractions: map[domain.UrgencyClass][3]float64{
			domain.UrgencyImmediate:     {0.15, 0.30, 0.50},
			domain.UrgencySameDay:       {0.20, 0.40, 0.65},
			domain.UrgencyStandard:      {0.25, 0.50, 0.75},
			domain.UrgencyExtendedGroup: {0.25, 0.50, 0.75},
			domain.UrgencyFlexible:      {0.25, 0.50, 0.75},
		},
		Tier2ReplenishCap: 4,
	}
}

// Validate checks internal consistency once, so downstream code does
// not have to defend against malformed params.
func (p Params) Validate() error {
	for i, r := range p.BaseRates {
		if r <= 0 || r > 1 {
			return fmt.Errorf("base rate for tier %d out of range: %v", i+1, r)
		}
	}
	for i, c := range p.TierCeilings {
		if c <= 0 {
			return fmt.Errorf("tier %d ceiling must be positive", i+1)
		}
	}
	if p.MaxEffectiveRate <= 0 || p.MaxEffectiveRate > 1 {
		return fmt.Errorf("max effective rate out of range: %v", p.MaxEffectiveRate)
	}
	for class, fr := range p.CheckInFractions {
		if !(fr[0] < fr[1] && fr[1] < fr[2]) || fr[0] <= 0 || fr[2] >= 1 {
			return fmt.Errorf("check-in fractions for %s must be strictly increasing within (0,1)", class)
		}
	}
	if p.Tier2ReplenishCap <= 0 {
		return fmt.Errorf("tier 2 replenish cap must be positive")
	}
	return nil
}
