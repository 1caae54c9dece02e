package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

// ClickUseCase validates and records rewarded clicks. The gate sequence
// short-circuits on the first failure: campaign exists, campaign is
// eligible, no duplicate click within the trailing 24 hours, and the
// calendar-day budget cap is not exceeded. The duplicate and budget
// gates run inside the repository's transaction together with the
// insert, so two concurrent requests for the same pair cannot both pass.
type ClickUseCase struct {
	campaigns port.CampaignRepository
	clicks    port.ClickRepository

	now func() time.Time
}

// NewClickUseCase creates a click recorder over the given repositories.
func NewClickUseCase(campaigns port.CampaignRepository, clicks port.ClickRepository) *ClickUseCase {
	return &ClickUseCase{campaigns: campaigns, clicks: clicks, now: time.Now}
}

// Record implements port.ClickRecorder.
func (u *ClickUseCase) Record(ctx context.Context, req port.RecordClickRequest) (*domain.Click, error) {
	campaign, err := u.campaigns.Get(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrCampaignNotFound
	}

	now := u.now()
	if !campaign.EligibleAt(now) {
		return nil, port.ErrCampaignInactive
	}

	click := &domain.Click{
		ID:           uuid.NewString(),
		CampaignID:   campaign.ID,
		UserID:       req.UserID,
		IPAddress:    req.IPAddress,
		UserAgent:    req.UserAgent,
		RewardAmount: campaign.CostPerClick,
		IsValid:      true,
		ClickedAt:    now,
	}
	if err = u.clicks.Record(ctx, click, windowAt(now)); err != nil {
		return nil, err
	}
	return click, nil
}

// windowAt derives the validation bounds for a click at the given
// instant: a trailing 24h duplicate cutoff and the local calendar day
// (half-open) for the budget cap. DayEnd is the next local midnight,
// which is not midnight+24h on DST-transition days.
func windowAt(now time.Time) port.ClickWindow {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return port.ClickWindow{
		DuplicateSince: now.Add(-24 * time.Hour),
		DayStart:       dayStart,
		DayEnd:         dayStart.AddDate(0, 0, 1),
	}
}
