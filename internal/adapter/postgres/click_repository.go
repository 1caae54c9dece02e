package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

// ClickRepository implements port.ClickRepository over a DB.
type ClickRepository struct {
	db DB
}

// NewClickRepository returns a new repository instance.
func NewClickRepository(db DB) *ClickRepository {
	return &ClickRepository{db: db}
}

const clickColumns = `id, campaign_id, user_id, ip_address, user_agent, reward_amount, is_valid, clicked_at, created_at`

// Record validates and inserts a click inside one serializable
// transaction. The campaign row is locked first, then the duplicate and
// budget gates are evaluated against the committed click history, so
// concurrent requests for the same (campaign, user) pair serialize and
// at most one passes. The commit error is returned: under the
// serializable level a conflict can surface at COMMIT, and reporting
// success for a click that was never persisted is not an option.
func (r *ClickRepository) Record(ctx context.Context, click *domain.Click, w port.ClickWindow) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// lock the campaign row for the duration of the checks
	var maxDaily int64
	err = tx.QueryRow(ctx, `SELECT max_daily_spend FROM campaigns WHERE id = $1 FOR UPDATE`,
		click.CampaignID).Scan(&maxDaily)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = port.ErrCampaignNotFound
		}
		return err
	}

	var duplicate bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (
            SELECT 1 FROM clicks
            WHERE campaign_id = $1 AND user_id = $2 AND clicked_at >= $3)`,
		click.CampaignID, click.UserID, w.DuplicateSince).Scan(&duplicate)
	if err != nil {
		return err
	}
	if duplicate {
		err = port.ErrDuplicateClick
		return err
	}

	var spentToday int64
	err = tx.QueryRow(ctx, `SELECT COALESCE(sum(reward_amount), 0) FROM clicks
            WHERE campaign_id = $1 AND is_valid AND clicked_at >= $2 AND clicked_at < $3`,
		click.CampaignID, w.DayStart, w.DayEnd).Scan(&spentToday)
	if err != nil {
		return err
	}
	if spentToday+click.RewardAmount > maxDaily {
		err = port.ErrBudgetExceeded
		return err
	}

	err = tx.QueryRow(ctx, `INSERT INTO clicks (`+clickColumns+`)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now()) RETURNING created_at`,
		click.ID, click.CampaignID, click.UserID, click.IPAddress, click.UserAgent,
		click.RewardAmount, click.IsValid, click.ClickedAt).Scan(&click.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns
            SET total_spent = total_spent + $1, updated_at = now() WHERE id = $2`,
		click.RewardAmount, click.CampaignID)
	if err != nil {
		return err
	}

	err = tx.Commit(ctx)
	return err
}

// ListByUser returns a user's clicks newest first.
func (r *ClickRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Click, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clickColumns+` FROM clicks
        WHERE user_id = $1 ORDER BY clicked_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Click, error) {
		var c domain.Click
		err := row.Scan(&c.ID, &c.CampaignID, &c.UserID, &c.IPAddress, &c.UserAgent,
			&c.RewardAmount, &c.IsValid, &c.ClickedAt, &c.CreatedAt)
		return c, err
	})
}

// SummaryByUser aggregates a user's valid-click rewards: lifetime total
// plus count and total within [dayStart, dayEnd).
func (r *ClickRepository) SummaryByUser(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*port.RewardSummary, error) {
	var s port.RewardSummary
	err := r.db.QueryRow(ctx, `SELECT
            COALESCE(sum(reward_amount), 0),
            COALESCE(sum(reward_amount) FILTER (WHERE clicked_at >= $2 AND clicked_at < $3), 0),
            COALESCE(count(*) FILTER (WHERE clicked_at >= $2 AND clicked_at < $3), 0)
        FROM clicks WHERE user_id = $1 AND is_valid`,
		userID, dayStart, dayEnd).Scan(&s.LifetimeReward, &s.TodayReward, &s.TodayClicks)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Stats returns the click count and reward spend for a period, across
// all campaigns or one.
func (r *ClickRepository) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`SELECT COALESCE(count(*), 0), COALESCE(sum(reward_amount), 0)
        FROM clicks
        WHERE is_valid AND clicked_at >= $1 AND clicked_at <= $2 %s`, whereCampaign)

	var resp port.StatsResp
	if err := r.db.QueryRow(ctx, query, args...).Scan(&resp.Clicks, &resp.Spend); err != nil {
		return nil, err
	}
	return &resp, nil
}
