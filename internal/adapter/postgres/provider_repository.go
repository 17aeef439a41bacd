package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outreach-engine/internal/core/domain"
)

// ProviderRepository reads the provider directory and inbound response
// tables. It backs the availability, progress and selection ports with
// plain queries; the directory itself is maintained outside this
// service.
type ProviderRepository struct {
	pool *pgxpool.Pool
}

// NewProviderRepository returns a new repository instance.
func NewProviderRepository(pool *pgxpool.Pool) *ProviderRepository {
	return &ProviderRepository{pool: pool}
}

// TierAvailability counts active providers per tier, narrowed to the
// project's region when one is set.
func (r *ProviderRepository) TierAvailability(ctx context.Context, project domain.ProjectContext) (domain.TierAvailability, error) {
	var av domain.TierAvailability
	rows, err := r.pool.Query(ctx, `SELECT tier, count(*) FROM providers
		WHERE active AND ($1 = '' OR region = $1)
		GROUP BY tier`, project.Region)
	if err != nil {
		return av, err
	}
	defer rows.Close()

	for rows.Next() {
		var tier, count int
		if err = rows.Scan(&tier, &count); err != nil {
			return av, err
		}
		switch tier {
		case 1:
			av.Tier1 = count
		case 2:
			av.Tier2 = count
		case 3:
			av.Tier3 = count
		}
	}
	return av, rows.Err()
}

// CampaignProgress counts the responses recorded for a campaign. Bids
// are the subset of responses carrying an actual bid.
func (r *ProviderRepository) CampaignProgress(ctx context.Context, campaignID string) (domain.Progress, error) {
	var p domain.Progress
	err := r.pool.QueryRow(ctx, `SELECT count(*) FILTER (WHERE bid), count(*)
		FROM provider_responses WHERE campaign_id = $1`, campaignID).
		Scan(&p.BidsReceived, &p.ResponsesReceived)
	return p, err
}

// SelectProviders picks up to count active providers of the tier, best
// rated first. Providers already contacted during an escalation of this
// campaign, or who already responded to it, are excluded.
func (r *ProviderRepository) SelectProviders(ctx context.Context, campaignID string, tier, count int, project domain.ProjectContext) ([]domain.ProviderHandle, error) {
	rows, err := r.pool.Query(ctx, `SELECT p.handle FROM providers p
		WHERE p.active AND p.tier = $2
		  AND ($4 = '' OR p.region = $4)
		  AND NOT EXISTS (
		      SELECT 1 FROM escalations e, jsonb_array_elements(e.actions) a
		      WHERE e.campaign_id = $1 AND a->>'provider' = p.handle)
		  AND NOT EXISTS (
		      SELECT 1 FROM provider_responses pr
		      WHERE pr.campaign_id = $1 AND pr.provider = p.handle)
		ORDER BY p.rating DESC, p.handle
		LIMIT $3`, campaignID, tier, count, project.Region)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProviderHandle, error) {
		var h domain.ProviderHandle
		err := row.Scan(&h)
		return h, err
	})
}
