package port

import (
	"context"
	"errors"
	"time"

	"outreach-engine/internal/core/domain"
)

var (
	// ErrInvalidInput marks bad caller arguments. Not retryable.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDataUnavailable marks a failed store or progress read. The
	// operation may be retried; a pending check-in stays pending.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrNotFound marks a missing campaign or check-in.
	ErrNotFound = errors.New("not found")
	// ErrOrderViolation marks an attempt to evaluate a check-in while an
	// earlier ordinal of the same campaign is still pending.
	ErrOrderViolation = errors.New("earlier check-in still pending")
	// ErrCampaignInactive marks work attempted against a campaign that
	// already reached a terminal status.
	ErrCampaignInactive = errors.New("campaign is not active")
)

// CheckInResult carries the values written when a check-in completes.
type CheckInResult struct {
	ActualBids       int
	OnTrack          bool
	EscalationNeeded bool
	CompletedAt      time.Time
}

// CampaignStore is the outbound persistence port. It is the single
// source of truth for campaigns, check-ins and escalation records and
// may be hit concurrently by the monitor loop and manual triggers.
// CompleteCheckIn must be atomic: the first completion wins and any
// later attempt reports completed=false without modifying the row.
type CampaignStore interface {
	// CreateCampaign persists a new campaign in draft status.
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	// GetCampaign returns a campaign by id, or ErrNotFound.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// UpdateCampaignStatus applies a forward status transition, setting
	// the matching timestamp (started/completed).
	UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus, at time.Time) error

	// CreateCheckIns persists the pending check-ins for a campaign.
	CreateCheckIns(ctx context.Context, checkIns []domain.CheckIn) error
	// GetCheckIn returns one check-in by campaign id and ordinal.
	GetCheckIn(ctx context.Context, campaignID string, ordinal int) (*domain.CheckIn, error)
	// ListCheckIns returns a campaign's check-ins ordered by ordinal.
	ListCheckIns(ctx context.Context, campaignID string) ([]domain.CheckIn, error)
	// FindDueCheckIns returns, for each active campaign, the lowest
	// pending ordinal whose scheduled instant has passed.
	FindDueCheckIns(ctx context.Context, now time.Time) ([]domain.CheckIn, error)
	// CompleteCheckIn records the evaluation result. completed is false
	// when the check-in was already completed by a racing caller.
	CompleteCheckIn(ctx context.Context, checkInID string, res CheckInResult) (completed bool, err error)
	// CancelPendingCheckIns removes pending check-ins of a campaign that
	// reached a terminal status.
	CancelPendingCheckIns(ctx context.Context, campaignID string) error

	// AppendEscalation writes an escalation audit record.
	AppendEscalation(ctx context.Context, rec domain.EscalationRecord) error
	// ListEscalations returns a campaign's escalation records in
	// chronological order.
	ListEscalations(ctx context.Context, campaignID string) ([]domain.EscalationRecord, error)

	// FindExpiredCampaigns returns active campaigns whose deadline has
	// passed.
	FindExpiredCampaigns(ctx context.Context, now time.Time) ([]domain.Campaign, error)
}
