package port

import (
	"context"
	"time"

	"adrewards/internal/core/domain"
)

// RecordClickRequest is the resolved input of the click recorder. The
// HTTP layer has already applied the body → header → "unknown" fallback
// for IPAddress and UserAgent.
type RecordClickRequest struct {
	UserID     string
	CampaignID string
	IPAddress  string
	UserAgent  string
}

// ClickRecorder validates and persists rewarded clicks. Record runs the
// gate sequence (campaign exists, campaign eligible, no duplicate within
// 24h, daily budget not exceeded) and returns the stored click. Gate
// failures surface as the sentinel errors in this package.
type ClickRecorder interface {
	Record(ctx context.Context, req RecordClickRequest) (*domain.Click, error)
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Authenticator issues and resolves bearer tokens.
type Authenticator interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password, ip string) (*AuthResult, error)
	// Identify resolves a bearer token to its user. It returns
	// ErrInvalidToken when the token is malformed, expired or names an
	// unknown user.
	Identify(ctx context.Context, token string) (*domain.User, error)
}

// CreateCampaignRequest carries the admin input for a new campaign.
type CreateCampaignRequest struct {
	Name          string     `json:"name"`
	CostPerClick  int64      `json:"cost_per_click"`
	MaxDailySpend int64      `json:"max_daily_spend"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

// UpdateCampaignRequest carries the mutable campaign fields. Nil fields
// are left unchanged.
type UpdateCampaignRequest struct {
	Name          *string    `json:"name,omitempty"`
	CostPerClick  *int64     `json:"cost_per_click,omitempty"`
	MaxDailySpend *int64     `json:"max_daily_spend,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

// CampaignManager is the admin-facing campaign surface.
type CampaignManager interface {
	Create(ctx context.Context, req CreateCampaignRequest) (*domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	List(ctx context.Context, limit, offset int) ([]domain.Campaign, error)
	Update(ctx context.Context, id string, req UpdateCampaignRequest) (*domain.Campaign, error)
	SetStatus(ctx context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error)
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// RewardsReader is the consumer-facing rewards surface.
type RewardsReader interface {
	Summary(ctx context.Context, userID string) (*RewardSummary, *domain.LevelProgress, error)
	History(ctx context.Context, userID string, limit, offset int) ([]domain.Click, error)
}
