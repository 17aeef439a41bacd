package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
)

// CampaignRepository implements port.CampaignStore using pgxpool for
// PostgreSQL. The strategy computed at campaign creation is stored as a
// JSONB snapshot next to the row.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, bid_target, timeline_hours, strategy, status,
	project_type, multi_project, region, created_at, started_at, completed_at`

// CreateCampaign persists a new campaign in draft status.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	strategy, err := json.Marshal(c.Strategy)
	if err != nil {
		return fmt.Errorf("marshal strategy: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
		(id, bid_target, timeline_hours, strategy, status, project_type, multi_project, region, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.BidTarget, c.TimelineHours, strategy, c.Status,
		c.Project.ProjectType, c.Project.MultiProject, c.Project.Region, c.CreatedAt)
	return err
}

// GetCampaign returns a campaign by id, or port.ErrNotFound.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCampaignStatus applies a forward status transition. The WHERE
// clause only matches legal predecessor states, so an illegal or
// backward transition updates nothing and reports ErrNotFound.
func (r *CampaignRepository) UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus, at time.Time) error {
	var tag string
	switch status {
	case domain.CampaignActive:
		tag = `UPDATE campaigns SET status = $2, started_at = $3 WHERE id = $1 AND status = 'draft'`
	case domain.CampaignCompleted, domain.CampaignFailed:
		tag = `UPDATE campaigns SET status = $2, completed_at = $3 WHERE id = $1 AND status = 'active'`
	default:
		return fmt.Errorf("%w: cannot transition to %s", port.ErrInvalidInput, status)
	}
	ct, err := r.pool.Exec(ctx, tag, id, status, at)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// CreateCheckIns persists pending check-ins in one transaction.
func (r *CampaignRepository) CreateCheckIns(ctx context.Context, checkIns []domain.CheckIn) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	for _, ci := range checkIns {
		_, err = tx.Exec(ctx, `INSERT INTO check_ins
			(id, campaign_id, ordinal, fraction, scheduled_at, expected_bids)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			ci.ID, ci.CampaignID, ci.Ordinal, ci.Fraction, ci.ScheduledAt, ci.ExpectedBids)
		if err != nil {
			return err
		}
	}
	return nil
}

const checkInColumns = `id, campaign_id, ordinal, fraction, scheduled_at,
	expected_bids, actual_bids, on_track, escalation_needed, completed_at`

// GetCheckIn returns one check-in by campaign id and ordinal.
func (r *CampaignRepository) GetCheckIn(ctx context.Context, campaignID string, ordinal int) (*domain.CheckIn, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+checkInColumns+` FROM check_ins WHERE campaign_id = $1 AND ordinal = $2`,
		campaignID, ordinal)
	ci, err := scanCheckIn(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ci, nil
}

// ListCheckIns returns a campaign's check-ins ordered by ordinal.
func (r *CampaignRepository) ListCheckIns(ctx context.Context, campaignID string) ([]domain.CheckIn, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+checkInColumns+` FROM check_ins WHERE campaign_id = $1 ORDER BY ordinal`,
		campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CheckIn, error) {
		ci, err := scanCheckIn(row)
		if err != nil {
			return domain.CheckIn{}, err
		}
		return *ci, nil
	})
}

// FindDueCheckIns returns, per active campaign, the lowest pending
// ordinal whose scheduled instant has passed. Limiting the result to
// the lowest ordinal enforces strict evaluation order at the query
// level.
func (r *CampaignRepository) FindDueCheckIns(ctx context.Context, now time.Time) ([]domain.CheckIn, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT ON (ci.campaign_id) `+qualifiedCheckInColumns+`
		FROM check_ins ci
		JOIN campaigns c ON c.id = ci.campaign_id
		WHERE c.status = 'active'
		  AND ci.completed_at IS NULL
		  AND ci.scheduled_at <= $1
		ORDER BY ci.campaign_id, ci.ordinal`, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CheckIn, error) {
		ci, err := scanCheckIn(row)
		if err != nil {
			return domain.CheckIn{}, err
		}
		return *ci, nil
	})
}

const qualifiedCheckInColumns = `ci.id, ci.campaign_id, ci.ordinal, ci.fraction,
	ci.scheduled_at, ci.expected_bids, ci.actual_bids, ci.on_track,
	ci.escalation_needed, ci.completed_at`

// CompleteCheckIn records the evaluation result at most once. The
// conditional UPDATE makes a raced second completion a no-op: it
// matches zero rows and the caller is told the row was already done.
func (r *CampaignRepository) CompleteCheckIn(ctx context.Context, checkInID string, res port.CheckInResult) (bool, error) {
	ct, err := r.pool.Exec(ctx, `UPDATE check_ins
		SET actual_bids = $2, on_track = $3, escalation_needed = $4, completed_at = $5
		WHERE id = $1 AND completed_at IS NULL`,
		checkInID, res.ActualBids, res.OnTrack, res.EscalationNeeded, res.CompletedAt)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

// CancelPendingCheckIns removes pending check-ins of a finished
// campaign.
func (r *CampaignRepository) CancelPendingCheckIns(ctx context.Context, campaignID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM check_ins WHERE campaign_id = $1 AND completed_at IS NULL`, campaignID)
	return err
}

// AppendEscalation writes an escalation audit record.
func (r *CampaignRepository) AppendEscalation(ctx context.Context, rec domain.EscalationRecord) error {
	actions, err := json.Marshal(rec.Actions)
	if err != nil {
		return fmt.Errorf("marshal actions: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO escalations
		(id, campaign_id, check_in_ordinal, level, performance_ratio, actions, recommendation, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		rec.ID, rec.CampaignID, rec.CheckInOrdinal, rec.Level.String(),
		rec.PerformanceRatio, actions, rec.Recommendation, rec.CreatedAt)
	return err
}

// ListEscalations returns a campaign's escalation records in
// chronological order.
func (r *CampaignRepository) ListEscalations(ctx context.Context, campaignID string) ([]domain.EscalationRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT
		id, campaign_id, check_in_ordinal, level, performance_ratio, actions, recommendation, created_at
		FROM escalations WHERE campaign_id = $1 ORDER BY created_at`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EscalationRecord, error) {
		var (
			rec     domain.EscalationRecord
			level   string
			actions []byte
		)
		err = row.Scan(&rec.ID, &rec.CampaignID, &rec.CheckInOrdinal, &level,
			&rec.PerformanceRatio, &actions, &rec.Recommendation, &rec.CreatedAt)
		if err != nil {
			return rec, err
		}
		rec.Level = parseLevel(level)
		if err = json.Unmarshal(actions, &rec.Actions); err != nil {
			return rec, fmt.Errorf("unmarshal actions: %w", err)
		}
		return rec, nil
	})
}

// FindExpiredCampaigns returns active campaigns whose deadline passed.
func (r *CampaignRepository) FindExpiredCampaigns(ctx context.Context, now time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
		WHERE status = 'active'
		  AND started_at + make_interval(secs => timeline_hours * 3600) <= $1`, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c        domain.Campaign
		strategy []byte
	)
	err := row.Scan(&c.ID, &c.BidTarget, &c.TimelineHours, &strategy, &c.Status,
		&c.Project.ProjectType, &c.Project.MultiProject, &c.Project.Region,
		&c.CreatedAt, &c.StartedAt, &c.CompletedAt)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(strategy, &c.Strategy); err != nil {
		return nil, fmt.Errorf("unmarshal strategy: %w", err)
	}
	return &c, nil
}

func scanCheckIn(row pgx.Row) (*domain.CheckIn, error) {
	var ci domain.CheckIn
	err := row.Scan(&ci.ID, &ci.CampaignID, &ci.Ordinal, &ci.Fraction, &ci.ScheduledAt,
		&ci.ExpectedBids, &ci.ActualBids, &ci.OnTrack, &ci.EscalationNeeded, &ci.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

func parseLevel(s string) domain.EscalationLevel {
	switch s {
	case "mild":
		return domain.EscalationMild
	case "moderate":
		return domain.EscalationModerate
	case "severe":
		return domain.EscalationSevere
	case "critical":
		return domain.EscalationCritical
	}
	return domain.EscalationNone
}
