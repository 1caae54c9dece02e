package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusActive   CampaignStatus = "active"
	StatusInactive CampaignStatus = "inactive"
	StatusEnded    CampaignStatus = "ended"
)

// Campaign is a rewarded-click campaign. Money fields are stored in
// integer units (e.g. cents). TotalSpent is informational and maintained
// by the click recording transaction.
type Campaign struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Status        CampaignStatus `json:"status"`
	CostPerClick  int64          `json:"cost_per_click"`
	MaxDailySpend int64          `json:"max_daily_spend"`
	TotalSpent    int64          `json:"total_spent"`
	StartDate     time.Time      `json:"start_date"`
	EndDate       *time.Time     `json:"end_date,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// EligibleAt reports whether the campaign accepts clicks at the given
// instant: status is active, the start date has passed and the end date
// (when set) has not.
func (c *Campaign) EligibleAt(now time.Time) bool {
	if c.Status != StatusActive {
		return false
	}
	if c.StartDate.After(now) {
		return false
	}
	if c.EndDate != nil && c.EndDate.Before(now) {
		return false
	}
	return true
}
