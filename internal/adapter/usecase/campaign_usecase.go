package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

const defaultPageSize = 50

// CampaignUseCase is the admin-facing campaign surface: CRUD plus the
// dashboard stats overview.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	clicks    port.ClickRepository

	now func() time.Time
}

// NewCampaignUseCase creates the campaign manager.
func NewCampaignUseCase(campaigns port.CampaignRepository, clicks port.ClickRepository) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, clicks: clicks, now: time.Now}
}

// Create validates and stores a new campaign. New campaigns start
// active.
func (u *CampaignUseCase) Create(ctx context.Context, req port.CreateCampaignRequest) (*domain.Campaign, error) {
	if err := validateCampaign(req.Name, req.CostPerClick, req.MaxDailySpend, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	now := u.now()
	c := &domain.Campaign{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Status:        domain.StatusActive,
		CostPerClick:  req.CostPerClick,
		MaxDailySpend: req.MaxDailySpend,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := u.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a campaign or ErrCampaignNotFound.
func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

// List returns campaigns newest first. A non-positive limit selects the
// default page size.
func (u *CampaignUseCase) List(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return u.campaigns.List(ctx, limit, offset)
}

// Update applies the non-nil fields of req and stores the result.
func (u *CampaignUseCase) Update(ctx context.Context, id string, req port.UpdateCampaignRequest) (*domain.Campaign, error) {
	c, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.CostPerClick != nil {
		c.CostPerClick = *req.CostPerClick
	}
	if req.MaxDailySpend != nil {
		c.MaxDailySpend = *req.MaxDailySpend
	}
	if req.StartDate != nil {
		c.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		c.EndDate = req.EndDate
	}
	if err = validateCampaign(c.Name, c.CostPerClick, c.MaxDailySpend, c.StartDate, c.EndDate); err != nil {
		return nil, err
	}
	c.UpdatedAt = u.now()
	if err = u.campaigns.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetStatus switches a campaign between active, inactive and ended.
func (u *CampaignUseCase) SetStatus(ctx context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	switch status {
	case domain.StatusActive, domain.StatusInactive, domain.StatusEnded:
	default:
		return nil, port.ValidationError("unknown campaign status")
	}
	c, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Status = status
	c.UpdatedAt = u.now()
	if err = u.campaigns.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Stats returns the aggregate click count and reward spend for the
// requested period.
func (u *CampaignUseCase) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.clicks.Stats(ctx, req)
}

func validateCampaign(name string, cpc, maxDaily int64, start time.Time, end *time.Time) error {
	if strings.TrimSpace(name) == "" {
		return port.ValidationError("campaign name is required")
	}
	if cpc < 0 {
		return port.ValidationError("cost_per_click must not be negative")
	}
	if maxDaily < 0 {
		return port.ValidationError("max_daily_spend must not be negative")
	}
	if start.IsZero() {
		return port.ValidationError("start_date is required")
	}
	if end != nil && end.Before(start) {
		return port.ValidationError("end_date must not precede start_date")
	}
	return nil
}
