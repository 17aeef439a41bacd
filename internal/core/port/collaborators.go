package port

import (
	"context"

	"outreach-engine/internal/core/domain"
)

// AvailabilitySource reports how many providers per tier can be reached
// for a given project.
type AvailabilitySource interface {
	TierAvailability(ctx context.Context, project domain.ProjectContext) (domain.TierAvailability, error)
}

// ProgressSource reports the bids and responses a campaign has actually
// received so far. A failed read surfaces as ErrDataUnavailable to the
// caller and must not be guessed around.
type ProgressSource interface {
	CampaignProgress(ctx context.Context, campaignID string) (domain.Progress, error)
}

// ProviderSelector picks providers of a tier for outreach. Handles are
// opaque. Implementations must exclude providers already contacted in
// the same campaign, so reactive replenishment never re-adds someone
// from an earlier pass.
type ProviderSelector interface {
	SelectProviders(ctx context.Context, campaignID string, tier, count int, project domain.ProjectContext) ([]domain.ProviderHandle, error)
}

// Composer prepares the personalized message payload for one provider
// and channel. Content generation is out of the engine's hands.
type Composer interface {
	Compose(ctx context.Context, campaignID string, provider domain.ProviderHandle, channel domain.Channel) (domain.MessagePayload, error)
}

// Dispatcher performs a single contact attempt on one channel. The
// engine walks domain.ChannelPriority and stops at the first success;
// an unsuccessful result is not an error, only transport failures are.
type Dispatcher interface {
	Attempt(ctx context.Context, provider domain.ProviderHandle, channel domain.Channel, payload domain.MessagePayload) (domain.DispatchResult, error)
}
