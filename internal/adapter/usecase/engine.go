package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/outreach"
	"outreach-engine/internal/core/port"
	"outreach-engine/internal/metrics"
)

// Engine implements port.OutreachEngine. It orchestrates the pure
// outreach computations against the injected collaborators; all state
// lives in the store.
type Engine struct {
	store        port.CampaignStore
	availability port.AvailabilitySource
	progress     port.ProgressSource
	selector     port.ProviderSelector
	composer     port.Composer
	dispatcher   port.Dispatcher

	calc   *outreach.Calculator
	params outreach.Params
	logger *slog.Logger

	completions *keyedMutex
	now         func() time.Time
	newID       func() string
}

// Deps bundles the collaborators an Engine is constructed with. Every
// field is required except Availability, which is only consulted when a
// creation request does not carry availability counts.
type Deps struct {
	Store        port.CampaignStore
	Availability port.AvailabilitySource
	Progress     port.ProgressSource
	Selector     port.ProviderSelector
	Composer     port.Composer
	Dispatcher   port.Dispatcher
	Logger       *slog.Logger
}

// NewEngine creates an engine with the provided collaborators and
// model params.
func NewEngine(deps Deps, params outreach.Params) (*Engine, error) {
	calc, err := outreach.NewCalculator(params)
	if err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:        deps.Store,
		availability: deps.Availability,
		progress:     deps.Progress,
		selector:     deps.Selector,
		composer:     deps.Composer,
		dispatcher:   deps.Dispatcher,
		calc:         calc,
		params:       params,
		logger:       logger,
		completions:  newKeyedMutex(),
		now:          time.Now,
		newID:        uuid.NewString,
	}, nil
}

// CreateCampaign validates the request, computes the outreach strategy,
// persists the campaign with its check-in schedule and activates it.
func (e *Engine) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*port.CreateCampaignResp, error) {
	if req.BidTarget <= 0 {
		return nil, fmt.Errorf("%w: bid target must be positive", port.ErrInvalidInput)
	}
	if req.TimelineHours <= 0 {
		return nil, fmt.Errorf("%w: timeline must be positive", port.ErrInvalidInput)
	}

	availability := req.Availability
	if availability.IsZero() && e.availability != nil {
		var err error
		availability, err = e.availability.TierAvailability(ctx, req.Project)
		if err != nil {
			return nil, fmt.Errorf("%w: tier availability query: %v", port.ErrDataUnavailable, err)
		}
	}

	strategy, err := e.calc.BuildStrategy(outreach.PlanInput{
		BidTarget:     req.BidTarget,
		TimelineHours: req.TimelineHours,
		Availability:  availability,
		Project:       req.Project,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidInput, err)
	}

	now := e.now()
	campaign := domain.Campaign{
		ID:            e.newID(),
		BidTarget:     req.BidTarget,
		TimelineHours: req.TimelineHours,
		Strategy:      strategy,
		Status:        domain.CampaignDraft,
		Project:       req.Project,
		CreatedAt:     now,
	}
	if err = e.store.CreateCampaign(ctx, campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	checkIns := outreach.MaterializeCheckIns(campaign.ID, now, strategy.CheckIns, e.newID)
	if err = e.store.CreateCheckIns(ctx, checkIns); err != nil {
		return nil, fmt.Errorf("schedule check-ins: %w", err)
	}
	if err = e.store.UpdateCampaignStatus(ctx, campaign.ID, domain.CampaignActive, now); err != nil {
		return nil, fmt.Errorf("activate campaign: %w", err)
	}

	metrics.CampaignsCreatedTotal.Inc()
	e.logger.Info("campaign created",
		slog.String("campaign_id", campaign.ID),
		slog.Int("bid_target", req.BidTarget),
		slog.String("urgency", string(strategy.Urgency)),
		slog.Int("total_contacted", strategy.TotalContacted),
		slog.Int("confidence", strategy.Confidence))
	return &port.CreateCampaignResp{CampaignID: campaign.ID, Strategy: strategy}, nil
}

// EvaluateCheckIn runs the checkpoint transition for one check-in. The
// monitor loop and manual operator triggers both land here; the keyed
// lock plus the store's conditional completion make the transition
// happen at most once.
func (e *Engine) EvaluateCheckIn(ctx context.Context, campaignID string, ordinal int) (*port.EvaluationResult, error) {
	campaign, err := e.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	// Serialize on the checkpoint identity before reading its row, so a
	// caller that waited out a concurrent evaluation sees the winner's
	// completion instead of a stale pending snapshot.
	unlock := e.completions.Lock(campaignID + "#" + strconv.Itoa(ordinal))
	defer unlock()

	checkIn, err := e.store.GetCheckIn(ctx, campaignID, ordinal)
	if err != nil {
		return nil, err
	}

	if checkIn.IsCompleted() {
		return e.storedResult(ctx, campaign, checkIn)
	}
	if campaign.Status != domain.CampaignActive {
		return nil, fmt.Errorf("%w: campaign %s is %s", port.ErrCampaignInactive, campaignID, campaign.Status)
	}
	if !checkIn.IsDue(e.now()) {
		return nil, fmt.Errorf("%w: check-in %d of campaign %s is not due until %s",
			port.ErrInvalidInput, ordinal, campaignID, checkIn.ScheduledAt.Format(time.RFC3339))
	}
	// A later ordinal must never complete before an earlier one.
	if ordinal > 1 {
		prev, err := e.store.GetCheckIn(ctx, campaignID, ordinal-1)
		if err != nil {
			return nil, err
		}
		if !prev.IsCompleted() {
			return nil, fmt.Errorf("%w: ordinal %d of campaign %s", port.ErrOrderViolation, ordinal-1, campaignID)
		}
	}

	progress, err := e.progress.CampaignProgress(ctx, campaignID)
	if err != nil {
		// The check-in stays pending; the next pass retries. Guessing a
		// count here would corrupt the escalation decision.
		return nil, fmt.Errorf("%w: campaign progress: %v", port.ErrDataUnavailable, err)
	}

	contacted, err := e.contactedByTier(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("%w: escalation history: %v", port.ErrDataUnavailable, err)
	}

	ev := outreach.Evaluate(e.params, ordinal, progress.BidsReceived, checkIn.ExpectedBids, contacted)

	var actions []domain.ContactAction
	if ev.Level != domain.EscalationNone {
		actions = e.replenish(ctx, campaign, ev.Replenishment)
	}

	completed, err := e.store.CompleteCheckIn(ctx, checkIn.ID, port.CheckInResult{
		ActualBids:       progress.BidsReceived,
		OnTrack:          ev.OnTrack,
		EscalationNeeded: ev.Level != domain.EscalationNone,
		CompletedAt:      e.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("complete check-in: %w", err)
	}
	if !completed {
		// Lost the race against another process. Idempotent: report the
		// stored outcome instead of an error.
		stored, err := e.store.GetCheckIn(ctx, campaignID, ordinal)
		if err != nil {
			return nil, err
		}
		return e.storedResult(ctx, campaign, stored)
	}

	if ev.Level != domain.EscalationNone {
		rec := domain.EscalationRecord{
			ID:               e.newID(),
			CampaignID:       campaignID,
			CheckInOrdinal:   ordinal,
			Level:            ev.Level,
			PerformanceRatio: ev.PerformanceRatio,
			Actions:          actions,
			Recommendation:   ev.Recommendation,
			CreatedAt:        e.now(),
		}
		if err = e.store.AppendEscalation(ctx, rec); err != nil {
			return nil, fmt.Errorf("append escalation: %w", err)
		}
		metrics.EscalationsTotal.WithLabelValues(ev.Level.String()).Inc()
		metrics.CheckInsEvaluatedTotal.WithLabelValues("escalated").Inc()
		e.logger.Warn("check-in escalated",
			slog.String("campaign_id", campaignID),
			slog.Int("ordinal", ordinal),
			slog.String("level", ev.Level.String()),
			slog.Float64("ratio", ev.PerformanceRatio),
			slog.Int("providers_added", len(actions)))
	} else {
		metrics.CheckInsEvaluatedTotal.WithLabelValues("on_track").Inc()
		e.logger.Info("check-in on track",
			slog.String("campaign_id", campaignID),
			slog.Int("ordinal", ordinal),
			slog.Float64("ratio", ev.PerformanceRatio))
	}

	status := campaign.Status
	if progress.BidsReceived >= campaign.BidTarget {
		if err = e.completeCampaign(ctx, campaign); err != nil {
			return nil, err
		}
		status = domain.CampaignCompleted
	}

	return &port.EvaluationResult{
		CampaignID:       campaignID,
		Ordinal:          ordinal,
		PerformanceRatio: ev.PerformanceRatio,
		Level:            ev.Level,
		OnTrack:          ev.OnTrack,
		Recommendation:   ev.Recommendation,
		Actions:          actions,
		CampaignStatus:   status,
	}, nil
}

// GetCampaignStatus aggregates campaign state, live progress and
// check-in history.
func (e *Engine) GetCampaignStatus(ctx context.Context, campaignID string) (*port.CampaignStatusReport, error) {
	campaign, err := e.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	checkIns, err := e.store.ListCheckIns(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("%w: check-ins: %v", port.ErrDataUnavailable, err)
	}
	escalations, err := e.store.ListEscalations(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("%w: escalations: %v", port.ErrDataUnavailable, err)
	}
	progress, err := e.progress.CampaignProgress(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("%w: campaign progress: %v", port.ErrDataUnavailable, err)
	}

	contacted := campaign.Strategy.TotalContacted
	for _, rec := range escalations {
		for _, a := range rec.Actions {
			if !a.Failed {
				contacted++
			}
		}
	}

	return &port.CampaignStatusReport{
		CampaignID:     campaignID,
		Status:         campaign.Status,
		BidTarget:      campaign.BidTarget,
		Deadline:       campaign.Deadline(),
		TotalContacted: contacted,
		Progress:       progress,
		Confidence:     campaign.Strategy.Confidence,
		CheckIns:       checkIns,
		Escalations:    escalations,
	}, nil
}

// storedResult reconstructs the evaluation outcome of an already
// completed check-in. The computation is deterministic in the stored
// actual and expected counts; recorded actions come from the matching
// escalation record.
func (e *Engine) storedResult(ctx context.Context, campaign *domain.Campaign, checkIn *domain.CheckIn) (*port.EvaluationResult, error) {
	actual := 0
	if checkIn.ActualBids != nil {
		actual = *checkIn.ActualBids
	}
	ratio := outreach.PerformanceRatio(actual, checkIn.ExpectedBids)
	level := outreach.SeverityFor(ratio)

	var actions []domain.ContactAction
	recommendation := outreach.RecommendationFor(level, checkIn.Ordinal)
	if level != domain.EscalationNone {
		records, err := e.store.ListEscalations(ctx, campaign.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: escalations: %v", port.ErrDataUnavailable, err)
		}
		for _, rec := range records {
			if rec.CheckInOrdinal == checkIn.Ordinal {
				actions = rec.Actions
				recommendation = rec.Recommendation
				break
			}
		}
	}

	return &port.EvaluationResult{
		CampaignID:       campaign.ID,
		Ordinal:          checkIn.Ordinal,
		PerformanceRatio: ratio,
		Level:            level,
		OnTrack:          ratio >= 75,
		Recommendation:   recommendation,
		Actions:          actions,
		AlreadyCompleted: true,
		CampaignStatus:   campaign.Status,
	}, nil
}

// contactedByTier counts providers contacted so far per tier: the
// original plan plus every successful escalation action. Replenishment
// is bounded by the lifetime ceilings against these counts.
func (e *Engine) contactedByTier(ctx context.Context, campaign *domain.Campaign) ([3]int, error) {
	var counts [3]int
	for i, tp := range campaign.Strategy.Tiers {
		counts[i] = tp.Contacted
	}
	records, err := e.store.ListEscalations(ctx, campaign.ID)
	if err != nil {
		return counts, err
	}
	for _, rec := range records {
		for _, a := range rec.Actions {
			if !a.Failed && a.Tier >= 1 && a.Tier <= 3 {
				counts[a.Tier-1]++
			}
		}
	}
	return counts, nil
}

// replenish selects and contacts the additional providers an
// escalation asks for. Selector and dispatch failures are isolated per
// tier and per provider: they are recorded and logged, never fatal to
// the evaluation.
func (e *Engine) replenish(ctx context.Context, campaign *domain.Campaign, rep outreach.Replenishment) []domain.ContactAction {
	var actions []domain.ContactAction
	for _, t := range []struct{ tier, count int }{{2, rep.Tier2}, {3, rep.Tier3}} {
		if t.count == 0 {
			continue
		}
		handles, err := e.selector.SelectProviders(ctx, campaign.ID, t.tier, t.count, campaign.Project)
		if err != nil {
			e.logger.Error("provider selection failed",
				slog.String("campaign_id", campaign.ID),
				slog.Int("tier", t.tier),
				slog.Any("error", err))
			continue
		}
		for _, handle := range handles {
			action := e.contactProvider(ctx, campaign.ID, handle, t.tier)
			actions = append(actions, action)
			if !action.Failed {
				metrics.ProvidersAddedTotal.WithLabelValues(strconv.Itoa(t.tier)).Inc()
			}
		}
	}
	return actions
}

// contactProvider walks the channel priority order and stops at the
// first successful attempt. Exhausting every channel is recorded as a
// failed contact, not raised.
func (e *Engine) contactProvider(ctx context.Context, campaignID string, handle domain.ProviderHandle, tier int) domain.ContactAction {
	action := domain.ContactAction{Provider: handle, Tier: tier}
	for _, channel := range domain.ChannelPriority {
		payload, err := e.composer.Compose(ctx, campaignID, handle, channel)
		if err != nil {
			metrics.DispatchAttemptsTotal.WithLabelValues(string(channel), "compose_error").Inc()
			action.Reason = err.Error()
			continue
		}
		res, err := e.dispatcher.Attempt(ctx, handle, channel, payload)
		if err != nil {
			metrics.DispatchAttemptsTotal.WithLabelValues(string(channel), "error").Inc()
			action.Reason = err.Error()
			continue
		}
		if res.Success {
			metrics.DispatchAttemptsTotal.WithLabelValues(string(channel), "success").Inc()
			action.Channel = res.Channel
			action.Reason = ""
			return action
		}
		metrics.DispatchAttemptsTotal.WithLabelValues(string(channel), "failure").Inc()
		action.Reason = res.Reason
	}
	action.Failed = true
	e.logger.Warn("all channels exhausted for provider",
		slog.String("campaign_id", campaignID),
		slog.String("provider", string(handle)),
		slog.String("reason", action.Reason))
	return action
}

// completeCampaign transitions the campaign to completed and cancels
// whatever check-ins remain.
func (e *Engine) completeCampaign(ctx context.Context, campaign *domain.Campaign) error {
	if !campaign.Status.CanTransitionTo(domain.CampaignCompleted) {
		return fmt.Errorf("%w: campaign %s is %s", port.ErrCampaignInactive, campaign.ID, campaign.Status)
	}
	if err := e.store.UpdateCampaignStatus(ctx, campaign.ID, domain.CampaignCompleted, e.now()); err != nil {
		return fmt.Errorf("complete campaign: %w", err)
	}
	if err := e.store.CancelPendingCheckIns(ctx, campaign.ID); err != nil {
		return fmt.Errorf("cancel pending check-ins: %w", err)
	}
	metrics.CampaignsByOutcome.WithLabelValues("completed").Inc()
	e.logger.Info("campaign reached its bid target", slog.String("campaign_id", campaign.ID))
	return nil
}
