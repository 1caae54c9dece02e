package port

import (
	"context"
	"time"

	"adrewards/internal/core/domain"
)

// ClickWindow carries the time bounds a click must be validated against.
// DuplicateSince is the trailing 24h duplicate cutoff; DayStart/DayEnd
// bound the calendar day used for the budget cap (half-open interval).
type ClickWindow struct {
	DuplicateSince time.Time
	DayStart       time.Time
	DayEnd         time.Time
}

// RewardSummary aggregates a user's earnings for the rewards surface.
type RewardSummary struct {
	LifetimeReward int64 `json:"lifetime_reward"`
	TodayReward    int64 `json:"today_reward"`
	TodayClicks    int64 `json:"today_clicks"`
}

// StatsReq selects the period and optional campaign for a stats query.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *string
}

// StatsResp contains aggregate click counts and reward spend for the
// requested period, in integer money units.
type StatsResp struct {
	Clicks int64 `json:"clicks"`
	Spend  int64 `json:"spend"`
}

// CampaignRepository is the persistence port for campaigns.
// Get returns (nil, nil) when the id does not resolve.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	Update(ctx context.Context, c *domain.Campaign) error
	List(ctx context.Context, limit, offset int) ([]domain.Campaign, error)
}

// ClickRepository is the persistence port for clicks. Record must run
// the duplicate check, the daily budget check and the insert atomically:
// it locks the campaign row and returns ErrDuplicateClick or
// ErrBudgetExceeded when a gate fails, leaving no partial state behind.
// A nil return means the click is durably committed; commit failures
// must surface as errors, never as a silently dropped click.
type ClickRepository interface {
	Record(ctx context.Context, click *domain.Click, w ClickWindow) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Click, error)
	SummaryByUser(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*RewardSummary, error)
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// UserRepository is the persistence port for identities. GetByEmail and
// Get return (nil, nil) when no row matches. Create returns
// ErrEmailTaken on a unique violation.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
