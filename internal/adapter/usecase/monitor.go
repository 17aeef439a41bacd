package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"outreach-engine/internal/config/configs"
	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
	"outreach-engine/internal/metrics"
)

// Monitor is the background loop that drives check-in evaluation. It
// polls the store for due check-ins, evaluates them sequentially and
// fails campaigns whose deadline passed. Per-item failures are logged
// and skipped; a pass-level failure backs off and the loop resumes. The
// loop only stops when its context is cancelled.
type Monitor struct {
	engine port.OutreachEngine
	store  port.CampaignStore
	cfg    configs.Monitor
	logger *slog.Logger
	now    func() time.Time
}

// NewMonitor builds a monitor over the shared engine and store.
func NewMonitor(engine port.OutreachEngine, store port.CampaignStore, cfg configs.Monitor, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{engine: engine, store: store, cfg: cfg, logger: logger, now: time.Now}
}

// Run blocks until ctx is cancelled. It is intended to be started once
// as a supervised goroutine from main.
func (m *Monitor) Run(ctx context.Context) {
	m.logger.Info("monitor loop started",
		slog.Duration("poll_interval", m.cfg.PollInterval),
		slog.Duration("error_backoff", m.cfg.ErrorBackoff))
	for {
		delay := m.cfg.PollInterval
		if err := m.Pass(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			metrics.MonitorErrorsTotal.WithLabelValues("pass").Inc()
			m.logger.Error("monitor pass failed, backing off", slog.Any("error", err))
			delay = m.cfg.ErrorBackoff
		}
		select {
		case <-ctx.Done():
			m.logger.Info("monitor loop stopped")
			return
		case <-time.After(delay):
		}
	}
	m.logger.Info("monitor loop stopped")
}

// Pass executes one polling pass: evaluate every due check-in, then
// sweep expired campaigns. Exported so a pass can also be forced in
// tests and tooling.
func (m *Monitor) Pass(ctx context.Context) error {
	start := m.now()
	defer func() {
		metrics.MonitorPassDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	findCtx, cancel := context.WithTimeout(ctx, m.cfg.CallTimeout)
	due, err := m.store.FindDueCheckIns(findCtx, start)
	cancel()
	if err != nil {
		return err
	}

	for _, ci := range due {
		m.evaluateOne(ctx, ci)
	}

	return m.sweepExpired(ctx)
}

// evaluateOne evaluates a single due check-in, isolating its errors
// from the rest of the pass.
func (m *Monitor) evaluateOne(ctx context.Context, ci domain.CheckIn) {
	evalCtx, cancel := context.WithTimeout(ctx, m.cfg.CallTimeout)
	defer cancel()

	_, err := m.engine.EvaluateCheckIn(evalCtx, ci.CampaignID, ci.Ordinal)
	switch {
	case err == nil:
	case errors.Is(err, port.ErrCampaignInactive), errors.Is(err, port.ErrOrderViolation):
		// Both resolve themselves: the campaign finished elsewhere, or
		// the earlier ordinal completes on a later pass.
		m.logger.Debug("skipping check-in",
			slog.String("campaign_id", ci.CampaignID),
			slog.Int("ordinal", ci.Ordinal),
			slog.Any("reason", err))
		metrics.CheckInsEvaluatedTotal.WithLabelValues("skipped").Inc()
	case errors.Is(err, port.ErrDataUnavailable):
		metrics.MonitorErrorsTotal.WithLabelValues("item").Inc()
		m.logger.Warn("progress unavailable, check-in left pending",
			slog.String("campaign_id", ci.CampaignID),
			slog.Int("ordinal", ci.Ordinal),
			slog.Any("error", err))
	default:
		metrics.MonitorErrorsTotal.WithLabelValues("item").Inc()
		m.logger.Error("check-in evaluation failed",
			slog.String("campaign_id", ci.CampaignID),
			slog.Int("ordinal", ci.Ordinal),
			slog.Any("error", err))
	}
}

// sweepExpired fails active campaigns whose deadline has passed and
// cancels their remaining check-ins.
func (m *Monitor) sweepExpired(ctx context.Context) error {
	findCtx, cancel := context.WithTimeout(ctx, m.cfg.CallTimeout)
	expired, err := m.store.FindExpiredCampaigns(findCtx, m.now())
	cancel()
	if err != nil {
		return err
	}
	for _, c := range expired {
		updCtx, cancel := context.WithTimeout(ctx, m.cfg.CallTimeout)
		err = m.store.UpdateCampaignStatus(updCtx, c.ID, domain.CampaignFailed, m.now())
		if err == nil {
			err = m.store.CancelPendingCheckIns(updCtx, c.ID)
		}
		cancel()
		if err != nil {
			metrics.MonitorErrorsTotal.WithLabelValues("item").Inc()
			m.logger.Error("failed to expire campaign",
				slog.String("campaign_id", c.ID),
				slog.Any("error", err))
			continue
		}
		metrics.CampaignsByOutcome.WithLabelValues("failed").Inc()
		m.logger.Warn("campaign deadline passed without reaching its target",
			slog.String("campaign_id", c.ID),
			slog.Int("bid_target", c.BidTarget))
	}
	return nil
}
