package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"adrewards/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository over a DB.
type CampaignRepository struct {
	db DB
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(db DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

const campaignColumns = `id, name, status, cost_per_click, max_daily_spend, total_spent, start_date, end_date, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Name, &c.Status, &c.CostPerClick, &c.MaxDailySpend,
		&c.TotalSpent, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a campaign row.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.db.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.Name, c.Status, c.CostPerClick, c.MaxDailySpend,
		c.TotalSpent, c.StartDate, c.EndDate, c.CreatedAt, c.UpdatedAt)
	return err
}

// Get returns a campaign by id, or (nil, nil) when absent.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.db.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

// Update rewrites the mutable columns of a campaign row.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	_, err := r.db.Exec(ctx, `UPDATE campaigns
        SET name = $2, status = $3, cost_per_click = $4, max_daily_spend = $5,
            start_date = $6, end_date = $7, updated_at = $8
        WHERE id = $1`,
		c.ID, c.Name, c.Status, c.CostPerClick, c.MaxDailySpend,
		c.StartDate, c.EndDate, c.UpdatedAt)
	return err
}

// List returns campaigns newest first.
func (r *CampaignRepository) List(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
        ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Name, &c.Status, &c.CostPerClick, &c.MaxDailySpend,
			&c.TotalSpent, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}
