package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

func testClick(reward int64) *domain.Click {
	return &domain.Click{
		ID:           "click-1",
		CampaignID:   "c1",
		UserID:       "u1",
		IPAddress:    "10.0.0.1",
		UserAgent:    "agent",
		RewardAmount: reward,
		IsValid:      true,
		ClickedAt:    time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func testWindow(now time.Time) port.ClickWindow {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return port.ClickWindow{
		DuplicateSince: now.Add(-24 * time.Hour),
		DayStart:       dayStart,
		DayEnd:         dayStart.AddDate(0, 0, 1),
	}
}

func expectCampaignLock(mock pgxmock.PgxPoolIface, maxDaily int64) {
	mock.ExpectQuery(`SELECT max_daily_spend FROM campaigns WHERE id = \$1 FOR UPDATE`).
		WithArgs("c1").
		WillReturnRows(pgxmock.NewRows([]string{"max_daily_spend"}).AddRow(maxDaily))
}

func expectDuplicateCheck(mock pgxmock.PgxPoolIface, w port.ClickWindow, duplicate bool) {
	// the cutoff bound is inclusive: a click at exactly now-24h counts
	mock.ExpectQuery(`clicked_at >= \$3`).
		WithArgs("c1", "u1", w.DuplicateSince).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(duplicate))
}

func expectSpentToday(mock pgxmock.PgxPoolIface, w port.ClickWindow, spent int64) {
	mock.ExpectQuery(`COALESCE\(sum\(reward_amount\), 0\) FROM clicks`).
		WithArgs("c1", w.DayStart, w.DayEnd).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(spent))
}

func expectInsertAndBump(mock pgxmock.PgxPoolIface, click *domain.Click) {
	mock.ExpectQuery(`INSERT INTO clicks`).
		WithArgs(click.ID, click.CampaignID, click.UserID, click.IPAddress,
			click.UserAgent, click.RewardAmount, click.IsValid, click.ClickedAt).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec(`UPDATE campaigns`).
		WithArgs(click.RewardAmount, click.CampaignID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
}

// TestRecordExactBudgetFit verifies the budget gate admits a click that
// lands exactly on the cap: cap 1000, nothing spent, reward 1000.
func TestRecordExactBudgetFit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	click := testClick(1000)
	w := testWindow(click.ClickedAt)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	expectCampaignLock(mock, 1000)
	expectDuplicateCheck(mock, w, false)
	expectSpentToday(mock, w, 0)
	expectInsertAndBump(mock, click)
	mock.ExpectCommit()

	repo := NewClickRepository(mock)
	if err := repo.Record(context.Background(), click, w); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if click.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not populated from RETURNING")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// TestRecordBudgetExceeded verifies the gate rejects when spend plus
// reward crosses the cap (600 spent + 500 reward > 1000) and nothing is
// inserted.
func TestRecordBudgetExceeded(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	click := testClick(500)
	w := testWindow(click.ClickedAt)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	expectCampaignLock(mock, 1000)
	expectDuplicateCheck(mock, w, false)
	expectSpentToday(mock, w, 600)
	mock.ExpectRollback()

	repo := NewClickRepository(mock)
	if err := repo.Record(context.Background(), click, w); !errors.Is(err, port.ErrBudgetExceeded) {
		t.Fatalf("expected ErrBudgetExceeded, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// TestRecordDuplicateInWindow verifies a prior click inside the
// trailing-24h cutoff rejects the new one before any insert.
func TestRecordDuplicateInWindow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	click := testClick(50)
	w := testWindow(click.ClickedAt)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	expectCampaignLock(mock, 1000)
	expectDuplicateCheck(mock, w, true)
	mock.ExpectRollback()

	repo := NewClickRepository(mock)
	if err := repo.Record(context.Background(), click, w); !errors.Is(err, port.ErrDuplicateClick) {
		t.Fatalf("expected ErrDuplicateClick, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// TestRecordCampaignRowGone maps a missing campaign row onto the
// not-found sentinel.
func TestRecordCampaignRowGone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	click := testClick(50)
	w := testWindow(click.ClickedAt)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	mock.ExpectQuery(`SELECT max_daily_spend FROM campaigns WHERE id = \$1 FOR UPDATE`).
		WithArgs("c1").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	repo := NewClickRepository(mock)
	if err := repo.Record(context.Background(), click, w); !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// TestRecordCommitFailure verifies a COMMIT error reaches the caller: a
// serialization conflict can surface only at commit, and a click that
// was never persisted must not be reported as recorded.
func TestRecordCommitFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	click := testClick(50)
	w := testWindow(click.ClickedAt)
	commitErr := errors.New("could not serialize access due to read/write dependencies")

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	expectCampaignLock(mock, 1000)
	expectDuplicateCheck(mock, w, false)
	expectSpentToday(mock, w, 0)
	expectInsertAndBump(mock, click)
	mock.ExpectCommit().WillReturnError(commitErr)
	mock.ExpectRollback()

	repo := NewClickRepository(mock)
	if err := repo.Record(context.Background(), click, w); !errors.Is(err, commitErr) {
		t.Fatalf("commit error not propagated, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
