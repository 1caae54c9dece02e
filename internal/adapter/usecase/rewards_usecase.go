package usecase

import (
	"context"
	"time"

	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

// RewardsUseCase serves the consumer rewards app: earnings summary with
// level progress, and the caller's click history.
type RewardsUseCase struct {
	clicks port.ClickRepository

	now func() time.Time
}

// NewRewardsUseCase creates the rewards reader.
func NewRewardsUseCase(clicks port.ClickRepository) *RewardsUseCase {
	return &RewardsUseCase{clicks: clicks, now: time.Now}
}

// Summary returns lifetime and today's earnings plus the level derived
// from the lifetime total. "Today" is the local calendar day.
func (u *RewardsUseCase) Summary(ctx context.Context, userID string) (*port.RewardSummary, *domain.LevelProgress, error) {
	w := windowAt(u.now())
	summary, err := u.clicks.SummaryByUser(ctx, userID, w.DayStart, w.DayEnd)
	if err != nil {
		return nil, nil, err
	}
	level := domain.LevelFor(summary.LifetimeReward)
	return summary, &level, nil
}

// History returns the caller's clicks newest first.
func (u *RewardsUseCase) History(ctx context.Context, userID string, limit, offset int) ([]domain.Click, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return u.clicks.ListByUser(ctx, userID, limit, offset)
}
