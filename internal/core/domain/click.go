package domain

import "time"

// Click is a single rewarded click. RewardAmount is copied from the
// campaign's cost per click at insert time and never changes afterwards.
// ClickedAt is the moment the request was accepted; CreatedAt is the
// database insertion time.
type Click struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaign_id"`
	UserID       string    `json:"user_id"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	RewardAmount int64     `json:"reward_amount"`
	IsValid      bool      `json:"is_valid"`
	ClickedAt    time.Time `json:"clicked_at"`
	CreatedAt    time.Time `json:"created_at"`
}
