package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/outreach"
	"outreach-engine/internal/core/port"
	"outreach-engine/internal/core/port/mocks"
)

type engineMocks struct {
	store      *mocks.MockCampaignStore
	progress   *mocks.MockProgressSource
	selector   *mocks.MockProviderSelector
	composer   *mocks.MockComposer
	dispatcher *mocks.MockDispatcher
}

func newTestEngine(t *testing.T) (*Engine, engineMocks) {
	m := engineMocks{
		store:      mocks.NewMockCampaignStore(t),
		progress:   mocks.NewMockProgressSource(t),
		selector:   mocks.NewMockProviderSelector(t),
		composer:   mocks.NewMockComposer(t),
		dispatcher: mocks.NewMockDispatcher(t),
	}
	e, err := NewEngine(Deps{
		Store:      m.store,
		Progress:   m.progress,
		Selector:   m.selector,
		Composer:   m.composer,
		Dispatcher: m.dispatcher,
	}, outreach.DefaultParams())
	require.NoError(t, err)

	// deterministic clock and ids for assertions
	e.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	n := 0
	e.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return e, m
}

func activeCampaign(strategy domain.OutreachStrategy) *domain.Campaign {
	started := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Campaign{
		ID:            "c1",
		BidTarget:     4,
		TimelineHours: 24,
		Strategy:      strategy,
		Status:        domain.CampaignActive,
		CreatedAt:     started,
		StartedAt:     &started,
	}
}

func pendingCheckIn(ordinal, expected int) *domain.CheckIn {
	return &domain.CheckIn{
		ID:           fmt.Sprintf("ci-%d", ordinal),
		CampaignID:   "c1",
		Ordinal:      ordinal,
		Fraction:     0.25 * float64(ordinal),
		ScheduledAt:  time.Date(2025, 6, 1, 6*ordinal, 0, 0, 0, time.UTC),
		ExpectedBids: expected,
	}
}

func TestCreateCampaignInvalidInput(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.CreateCampaign(context.Background(), port.CreateCampaignReq{BidTarget: 0, TimelineHours: 24})
	require.ErrorIs(t, err, port.ErrInvalidInput)

	_, err = e.CreateCampaign(context.Background(), port.CreateCampaignReq{BidTarget: 4, TimelineHours: 0})
	require.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestCreateCampaignPersistsAndActivates(t *testing.T) {
	e, m := newTestEngine(t)

	var created domain.Campaign
	m.store.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Run(func(ctx context.Context, c domain.Campaign) { created = c }).
		Return(nil)
	m.store.EXPECT().
		CreateCheckIns(mock.Anything, mock.AnythingOfType("[]domain.CheckIn")).
		Run(func(ctx context.Context, checkIns []domain.CheckIn) {
			require.Len(t, checkIns, 3)
			for i, ci := range checkIns {
				require.Equal(t, i+1, ci.Ordinal)
			}
		}).
		Return(nil)
	m.store.EXPECT().
		UpdateCampaignStatus(mock.Anything, mock.AnythingOfType("string"), domain.CampaignActive, mock.AnythingOfType("time.Time")).
		Return(nil)

	resp, err := e.CreateCampaign(context.Background(), port.CreateCampaignReq{
		BidTarget:     4,
		TimelineHours: 24,
		Availability:  domain.TierAvailability{Tier1: 5, Tier2: 20, Tier3: 100},
		Project:       domain.ProjectContext{ProjectType: "kitchen remodel"},
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, resp.CampaignID)
	require.Equal(t, domain.CampaignDraft, created.Status)
	require.Equal(t, 6, resp.Strategy.TotalContacted)
	require.Equal(t, domain.UrgencyStandard, resp.Strategy.Urgency)
}

func TestCreateCampaignQueriesAvailabilityWhenAbsent(t *testing.T) {
	e, m := newTestEngine(t)
	availability := mocks.NewMockAvailabilitySource(t)
	e.availability = availability

	availability.EXPECT().
		TierAvailability(mock.Anything, mock.AnythingOfType("domain.ProjectContext")).
		Return(domain.TierAvailability{Tier1: 3, Tier2: 10, Tier3: 40}, nil)
	m.store.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil)
	m.store.EXPECT().CreateCheckIns(mock.Anything, mock.Anything).Return(nil)
	m.store.EXPECT().UpdateCampaignStatus(mock.Anything, mock.Anything, domain.CampaignActive, mock.Anything).Return(nil)

	resp, err := e.CreateCampaign(context.Background(), port.CreateCampaignReq{BidTarget: 4, TimelineHours: 24})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Strategy.Tiers[0].Available)
}

func TestEvaluateCheckInOnTrack(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{
		Tiers: [3]domain.TierPlan{{Tier: 1, Contacted: 5}, {Tier: 2, Contacted: 1}, {Tier: 3}},
	})

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(pendingCheckIn(1, 1), nil)
	m.progress.EXPECT().CampaignProgress(mock.Anything, "c1").Return(domain.Progress{BidsReceived: 1}, nil)
	m.store.EXPECT().ListEscalations(mock.Anything, "c1").Return(nil, nil)
	m.store.EXPECT().
		CompleteCheckIn(mock.Anything, "ci-1", mock.AnythingOfType("port.CheckInResult")).
		Run(func(ctx context.Context, id string, res port.CheckInResult) {
			require.Equal(t, 1, res.ActualBids)
			require.True(t, res.OnTrack)
			require.False(t, res.EscalationNeeded)
		}).
		Return(true, nil)

	res, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.NoError(t, err)
	require.Equal(t, float64(100), res.PerformanceRatio)
	require.Equal(t, domain.EscalationNone, res.Level)
	require.True(t, res.OnTrack)
	require.False(t, res.AlreadyCompleted)
	require.Empty(t, res.Actions)
}

func TestEvaluateCheckInEscalatesAndDispatches(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{
		Tiers: [3]domain.TierPlan{{Tier: 1, Contacted: 5}, {Tier: 2, Contacted: 1}, {Tier: 3}},
	})

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(pendingCheckIn(1, 2), nil)
	m.progress.EXPECT().CampaignProgress(mock.Anything, "c1").Return(domain.Progress{}, nil)
	m.store.EXPECT().ListEscalations(mock.Anything, "c1").Return(nil, nil)

	// gap of 2 bids, all routed to tier 2
	m.selector.EXPECT().
		SelectProviders(mock.Anything, "c1", 2, 2, mock.AnythingOfType("domain.ProjectContext")).
		Return([]domain.ProviderHandle{"p1", "p2"}, nil)
	m.composer.EXPECT().
		Compose(mock.Anything, "c1", mock.AnythingOfType("domain.ProviderHandle"), domain.ChannelDirect).
		Return(domain.MessagePayload{Subject: "bid request"}, nil)
	m.dispatcher.EXPECT().
		Attempt(mock.Anything, mock.AnythingOfType("domain.ProviderHandle"), domain.ChannelDirect, mock.AnythingOfType("domain.MessagePayload")).
		Return(domain.DispatchResult{Success: true, Channel: domain.ChannelDirect}, nil)

	m.store.EXPECT().
		CompleteCheckIn(mock.Anything, "ci-1", mock.AnythingOfType("port.CheckInResult")).
		Return(true, nil)
	m.store.EXPECT().
		AppendEscalation(mock.Anything, mock.AnythingOfType("domain.EscalationRecord")).
		Run(func(ctx context.Context, rec domain.EscalationRecord) {
			require.Equal(t, domain.EscalationCritical, rec.Level)
			require.Equal(t, 1, rec.CheckInOrdinal)
			require.Len(t, rec.Actions, 2)
		}).
		Return(nil)

	res, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.NoError(t, err)
	require.Equal(t, domain.EscalationCritical, res.Level)
	require.False(t, res.OnTrack)
	require.Len(t, res.Actions, 2)
	for _, a := range res.Actions {
		require.Equal(t, 2, a.Tier)
		require.Equal(t, domain.ChannelDirect, a.Channel)
		require.False(t, a.Failed)
	}
}

func TestEvaluateCheckInFallsThroughChannels(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{
		Tiers: [3]domain.TierPlan{{Tier: 1, Contacted: 5}, {Tier: 2}, {Tier: 3}},
	})

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(pendingCheckIn(1, 1), nil)
	m.progress.EXPECT().CampaignProgress(mock.Anything, "c1").Return(domain.Progress{}, nil)
	m.store.EXPECT().ListEscalations(mock.Anything, "c1").Return(nil, nil)
	m.selector.EXPECT().
		SelectProviders(mock.Anything, "c1", 2, 1, mock.Anything).
		Return([]domain.ProviderHandle{"p1"}, nil)

	m.composer.EXPECT().
		Compose(mock.Anything, "c1", domain.ProviderHandle("p1"), mock.AnythingOfType("domain.Channel")).
		Return(domain.MessagePayload{}, nil)
	// direct bounces, web form succeeds; SMS and manual are never tried
	m.dispatcher.EXPECT().
		Attempt(mock.Anything, domain.ProviderHandle("p1"), domain.ChannelDirect, mock.Anything).
		Return(domain.DispatchResult{Success: false, Channel: domain.ChannelDirect, Reason: "bounced"}, nil)
	m.dispatcher.EXPECT().
		Attempt(mock.Anything, domain.ProviderHandle("p1"), domain.ChannelWebForm, mock.Anything).
		Return(domain.DispatchResult{Success: true, Channel: domain.ChannelWebForm}, nil)

	m.store.EXPECT().CompleteCheckIn(mock.Anything, "ci-1", mock.Anything).Return(true, nil)
	m.store.EXPECT().AppendEscalation(mock.Anything, mock.Anything).Return(nil)

	res, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.NoError(t, err)
	require.Len(t, res.Actions, 1)
	require.Equal(t, domain.ChannelWebForm, res.Actions[0].Channel)
}

func TestEvaluateCheckInIdempotent(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{})

	actual := 2
	onTrack := true
	escalated := false
	done := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)
	completedCheckIn := pendingCheckIn(1, 2)
	completedCheckIn.ActualBids = &actual
	completedCheckIn.OnTrack = &onTrack
	completedCheckIn.EscalationNeeded = &escalated
	completedCheckIn.CompletedAt = &done

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil).Twice()
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(completedCheckIn, nil).Twice()

	// two evaluations of a completed check-in return the same stored
	// result and never touch progress, selector or dispatcher.
	first, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.NoError(t, err)
	second, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.NoError(t, err)

	require.True(t, first.AlreadyCompleted)
	require.Equal(t, first, second)
	require.Equal(t, float64(100), first.PerformanceRatio)
}

// TestEvaluateCheckInConcurrentEvaluationsDispatchOnce interleaves the
// monitor and a manual trigger on the same check-in. The first caller
// is parked inside the progress read while holding the completion lock;
// the second must observe the completed row once it acquires the lock
// and return the stored result without contacting anyone again.
func TestEvaluateCheckInConcurrentEvaluationsDispatchOnce(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{
		Tiers: [3]domain.TierPlan{{Tier: 1, Contacted: 5}, {Tier: 2, Contacted: 1}, {Tier: 3}},
	})

	actual := 0
	onTrack := false
	escalated := true
	done := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	completed := pendingCheckIn(1, 2)
	completed.ActualBids = &actual
	completed.OnTrack = &onTrack
	completed.EscalationNeeded = &escalated
	completed.CompletedAt = &done

	firstInside := make(chan struct{})
	release := make(chan struct{})

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil).Twice()
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(pendingCheckIn(1, 2), nil).Once()
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(completed, nil).Once()
	m.progress.EXPECT().
		CampaignProgress(mock.Anything, "c1").
		Run(func(ctx context.Context, campaignID string) {
			close(firstInside)
			<-release
		}).
		Return(domain.Progress{}, nil).
		Once()
	m.store.EXPECT().ListEscalations(mock.Anything, "c1").Return(nil, nil).Twice()
	m.selector.EXPECT().
		SelectProviders(mock.Anything, "c1", 2, 2, mock.Anything).
		Return([]domain.ProviderHandle{"p1", "p2"}, nil).
		Once()
	m.composer.EXPECT().
		Compose(mock.Anything, "c1", mock.AnythingOfType("domain.ProviderHandle"), domain.ChannelDirect).
		Return(domain.MessagePayload{}, nil).
		Twice()
	m.dispatcher.EXPECT().
		Attempt(mock.Anything, mock.AnythingOfType("domain.ProviderHandle"), domain.ChannelDirect, mock.Anything).
		Return(domain.DispatchResult{Success: true, Channel: domain.ChannelDirect}, nil).
		Twice()
	m.store.EXPECT().CompleteCheckIn(mock.Anything, "ci-1", mock.Anything).Return(true, nil).Once()
	m.store.EXPECT().AppendEscalation(mock.Anything, mock.Anything).Return(nil).Once()

	type outcome struct {
		res *port.EvaluationResult
		err error
	}
	firstCh := make(chan outcome, 1)
	go func() {
		res, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
		firstCh <- outcome{res, err}
	}()

	<-firstInside // first caller now holds the completion lock

	secondCh := make(chan outcome, 1)
	go func() {
		res, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
		secondCh <- outcome{res, err}
	}()
	close(release)

	first := <-firstCh
	second := <-secondCh
	require.NoError(t, first.err)
	require.NoError(t, second.err)
	require.False(t, first.res.AlreadyCompleted)
	require.Len(t, first.res.Actions, 2)
	require.True(t, second.res.AlreadyCompleted)
	require.Empty(t, second.res.Actions)
}

func TestEvaluateCheckInRepeatMatchesFreshResult(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{})

	actual := 2
	onTrack := true
	escalated := false
	done := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	completed := pendingCheckIn(1, 2)
	completed.ActualBids = &actual
	completed.OnTrack = &onTrack
	completed.EscalationNeeded = &escalated
	completed.CompletedAt = &done

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil).Twice()
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(pendingCheckIn(1, 2), nil).Once()
	m.progress.EXPECT().CampaignProgress(mock.Anything, "c1").Return(domain.Progress{BidsReceived: 2}, nil)
	m.store.EXPECT().ListEscalations(mock.Anything, "c1").Return(nil, nil)
	m.store.EXPECT().CompleteCheckIn(mock.Anything, "ci-1", mock.Anything).Return(true, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(completed, nil).Once()

	fresh, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.NoError(t, err)
	repeat, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.NoError(t, err)

	require.True(t, repeat.AlreadyCompleted)
	require.Equal(t, "progress on track; no action needed", fresh.Recommendation)

	// apart from the repeat marker the results must match field for field.
	fresh.AlreadyCompleted = true
	require.Equal(t, fresh, repeat)
}

func TestEvaluateCheckInRefusesNotDue(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{})

	// scheduled six hours after the test clock's noon.
	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 3).Return(pendingCheckIn(3, 3), nil)

	_, err := e.EvaluateCheckIn(context.Background(), "c1", 3)
	require.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestEvaluateCheckInRefusesOutOfOrder(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{})

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 2).Return(pendingCheckIn(2, 2), nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(pendingCheckIn(1, 1), nil)

	_, err := e.EvaluateCheckIn(context.Background(), "c1", 2)
	require.ErrorIs(t, err, port.ErrOrderViolation)
}

func TestEvaluateCheckInProgressUnavailable(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{})

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(pendingCheckIn(1, 1), nil)
	m.progress.EXPECT().
		CampaignProgress(mock.Anything, "c1").
		Return(domain.Progress{}, errors.New("progress service down"))

	// no CompleteCheckIn expectation: the check-in must stay pending.
	_, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.ErrorIs(t, err, port.ErrDataUnavailable)
}

func TestEvaluateCheckInSkipsInactiveCampaign(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{})
	campaign.Status = domain.CampaignCompleted

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(pendingCheckIn(1, 1), nil)

	_, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.ErrorIs(t, err, port.ErrCampaignInactive)
}

func TestEvaluateCheckInLostRaceReturnsStoredResult(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{})

	actual := 2
	done := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)
	completed := pendingCheckIn(1, 2)
	completed.ActualBids = &actual
	completed.CompletedAt = &done

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(pendingCheckIn(1, 2), nil).Once()
	m.progress.EXPECT().CampaignProgress(mock.Anything, "c1").Return(domain.Progress{BidsReceived: 2}, nil)
	m.store.EXPECT().ListEscalations(mock.Anything, "c1").Return(nil, nil)
	// another process completed the row first
	m.store.EXPECT().CompleteCheckIn(mock.Anything, "ci-1", mock.Anything).Return(false, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(completed, nil).Once()

	res, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.NoError(t, err)
	require.True(t, res.AlreadyCompleted)
	require.Equal(t, float64(100), res.PerformanceRatio)
}

func TestEvaluateCheckInCompletesCampaignAtTarget(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{})

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil)
	m.store.EXPECT().GetCheckIn(mock.Anything, "c1", 1).Return(pendingCheckIn(1, 2), nil)
	m.progress.EXPECT().CampaignProgress(mock.Anything, "c1").Return(domain.Progress{BidsReceived: 4}, nil)
	m.store.EXPECT().ListEscalations(mock.Anything, "c1").Return(nil, nil)
	m.store.EXPECT().CompleteCheckIn(mock.Anything, "ci-1", mock.Anything).Return(true, nil)
	m.store.EXPECT().
		UpdateCampaignStatus(mock.Anything, "c1", domain.CampaignCompleted, mock.AnythingOfType("time.Time")).
		Return(nil)
	m.store.EXPECT().CancelPendingCheckIns(mock.Anything, "c1").Return(nil)

	res, err := e.EvaluateCheckIn(context.Background(), "c1", 1)
	require.NoError(t, err)
	require.Equal(t, domain.CampaignCompleted, res.CampaignStatus)
}

func TestGetCampaignStatus(t *testing.T) {
	e, m := newTestEngine(t)
	campaign := activeCampaign(domain.OutreachStrategy{
		TotalContacted: 6,
		Confidence:     100,
		Tiers:          [3]domain.TierPlan{{Tier: 1, Contacted: 5}, {Tier: 2, Contacted: 1}, {Tier: 3}},
	})

	m.store.EXPECT().GetCampaign(mock.Anything, "c1").Return(campaign, nil)
	m.store.EXPECT().ListCheckIns(mock.Anything, "c1").Return([]domain.CheckIn{*pendingCheckIn(1, 1)}, nil)
	m.store.EXPECT().ListEscalations(mock.Anything, "c1").Return([]domain.EscalationRecord{{
		CheckInOrdinal: 1,
		Level:          domain.EscalationModerate,
		Actions: []domain.ContactAction{
			{Provider: "p1", Tier: 2, Channel: domain.ChannelDirect},
			{Provider: "p2", Tier: 3, Failed: true},
		},
	}}, nil)
	m.progress.EXPECT().CampaignProgress(mock.Anything, "c1").Return(domain.Progress{BidsReceived: 2, ResponsesReceived: 3}, nil)

	report, err := e.GetCampaignStatus(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, domain.CampaignActive, report.Status)
	// 6 planned plus the one successful escalation contact
	require.Equal(t, 7, report.TotalContacted)
	require.Equal(t, 2, report.Progress.BidsReceived)
	require.Len(t, report.Escalations, 1)
}
