package domain

// UrgencyClass buckets a campaign timeline into one of five classes.
// Shorter timelines depress expected response rates and front-load the
// check-in schedule.
type UrgencyClass string

const (
	UrgencyImmediate     UrgencyClass = "immediate"
	UrgencySameDay       UrgencyClass = "same_day"
	UrgencyStandard      UrgencyClass = "standard"
	UrgencyExtendedGroup UrgencyClass = "extended_group"
	UrgencyFlexible      UrgencyClass = "flexible"
)

// IsUrgent reports whether the class is one of the two most urgent,
// which factors into risk assessment.
func (u UrgencyClass) IsUrgent() bool {
	return u == UrgencyImmediate || u == UrgencySameDay
}

// TierPlan is the per-tier slice of a contact plan. Tier 1 providers are
// the highest-affinity contacts, tier 3 the cold pool.
type TierPlan struct {
	Tier         int     `json:"tier"`
	ResponseRate float64 `json:"response_rate"` // adjusted, not base
	Available    int     `json:"available"`
	Contacted    int     `json:"contacted"`
	Expected     float64 `json:"expected"`
}

// OutreachStrategy is the full contact plan produced by the calculator.
// Invariant: TotalContacted equals the sum of the per-tier Contacted
// counts.
type OutreachStrategy struct {
	BidTarget       int            `json:"bid_target"`
	TimelineHours   float64        `json:"timeline_hours"`
	Urgency         UrgencyClass   `json:"urgency"`
	Tiers           [3]TierPlan    `json:"tiers"`
	TotalContacted  int            `json:"total_contacted"`
	TotalExpected   float64        `json:"total_expected"`
	Confidence      int            `json:"confidence"` // 0..100
	RiskFactors     []string       `json:"risk_factors,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
	CheckIns        []CheckInPoint `json:"check_ins"`
}

// CheckInPoint is a scheduled progress checkpoint expressed as a
// fraction of the timeline.
type CheckInPoint struct {
	Ordinal      int     `json:"ordinal"` // 1..3
	Fraction     float64 `json:"fraction"`
	HoursFromNow float64 `json:"hours_from_now"`
	ExpectedBids int     `json:"expected_bids"`
}

// TierAvailability is the number of reachable providers per tier as
// reported by the provider directory.
type TierAvailability struct {
	Tier1 int
	Tier2 int
	Tier3 int
}

func (a TierAvailability) ForTier(tier int) int {
	switch tier {
	case 1:
		return a.Tier1
	case 2:
		return a.Tier2
	case 3:
		return a.Tier3
	}
	return 0
}

func (a TierAvailability) IsZero() bool {
	return a.Tier1 == 0 && a.Tier2 == 0 && a.Tier3 == 0
}
