package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Seed inserts demo data for development: an admin, a handful of
// consumers and a few active campaigns with yesterday's clicks. It is
// a no-op when campaigns already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var seeded bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns)`).Scan(&seeded); err != nil {
		return err
	}
	if seeded {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminID := uuid.NewString()
	_, err = pool.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, created_at)
        VALUES ($1, 'admin@example.com', $2, 'admin', now()) ON CONFLICT (email) DO NOTHING`,
		adminID, string(hash))
	if err != nil {
		return err
	}

	userIDs := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		id := uuid.NewString()
		email := fmt.Sprintf("user%d@example.com", i)
		var got string
		err = pool.QueryRow(ctx, `INSERT INTO users (id, email, password_hash, role, created_at)
            VALUES ($1, $2, $3, 'user', now())
            ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
            RETURNING id`, id, email, string(hash)).Scan(&got)
		if err != nil {
			return err
		}
		userIDs = append(userIDs, got)
	}

	campaigns := []struct {
		name     string
		cpc      int64
		maxDaily int64
	}{
		{"Coffee brand launch", 50, 5_000},
		{"Streaming trial", 120, 12_000},
		{"Fitness app install", 80, 4_000},
	}
	start := time.Now().AddDate(0, 0, -7)
	end := time.Now().AddDate(0, 1, 0)
	for _, c := range campaigns {
		campaignID := uuid.NewString()
		var got string
		err = pool.QueryRow(ctx, `INSERT INTO campaigns
            (id, name, status, cost_per_click, max_daily_spend, total_spent, start_date, end_date, created_at, updated_at)
            VALUES ($1, $2, 'active', $3, $4, 0, $5, $6, now(), now())
            ON CONFLICT (id) DO NOTHING
            RETURNING id`, campaignID, c.name, c.cpc, c.maxDaily, start, end).Scan(&got)
		if err != nil {
			return err
		}
		// yesterday's clicks so the dashboard has something to show
		clickedAt := time.Now().Add(-25 * time.Hour)
		for _, userID := range userIDs {
			_, err = pool.Exec(ctx, `INSERT INTO clicks
                (id, campaign_id, user_id, ip_address, user_agent, reward_amount, is_valid, clicked_at, created_at)
                VALUES ($1, $2, $3, '127.0.0.1', 'seed', $4, true, $5, now())
                ON CONFLICT (id) DO NOTHING`,
				uuid.NewString(), got, userID, c.cpc, clickedAt)
			if err != nil {
				return err
			}
			_, err = pool.Exec(ctx, `UPDATE campaigns SET total_spent = total_spent + $1 WHERE id = $2`, c.cpc, got)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
