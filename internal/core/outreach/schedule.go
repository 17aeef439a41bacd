package outreach

import (
	"math"
	"time"

	"outreach-engine/internal/core/domain"
)

// ScheduleCheckIns places three progress checkpoints on the timeline.
// Urgent classes check earlier; standard and flexible classes spread
// evenly. Expected bids assume linear progress toward the target, so
// they never exceed it before the deadline.
func ScheduleCheckIns(params Params, timelineHours float64, urgency domain.UrgencyClass, bidTarget int) []domain.CheckInPoint {
	fractions, ok := params.CheckInFractions[urgency]
	if !ok {
		fractions = params.CheckInFractions[domain.UrgencyStandard]
	}
	points := make([]domain.CheckInPoint, 0, len(fractions))
	for i, fraction := range fractions {
		points = append(points, domain.CheckInPoint{
			Ordinal:      i + 1,
			Fraction:     fraction,
			HoursFromNow: timelineHours * fraction,
			ExpectedBids: int(math.Ceil(float64(bidTarget) * fraction)),
		})
	}
	return points
}

// MaterializeCheckIns converts checkpoint fractions into persistable
// check-in rows anchored at the campaign start instant.
func MaterializeCheckIns(campaignID string, startedAt time.Time, points []domain.CheckInPoint, newID func() string) []domain.CheckIn {
	checkIns := make([]domain.CheckIn, 0, len(points))
	for _, p := range points {
		checkIns = append(checkIns, domain.CheckIn{
			ID:           newID(),
			CampaignID:   campaignID,
			Ordinal:      p.Ordinal,
			Fraction:     p.Fraction,
			ScheduledAt:  startedAt.Add(time.Duration(p.HoursFromNow * float64(time.Hour))),
			ExpectedBids: p.ExpectedBids,
		})
	}
	return checkIns
}
