package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"dailyhome/internal/logger"
	"dailyhome/internal/models"
)

type DiaryReadRepository struct {
	db *sqlx.DB
}

func NewDiaryReadRepository(db *sqlx.DB) *DiaryReadRepository {
	return &DiaryReadRepository{db: db}
}

// GetByDate returns the user's entry for the given date, or nil when absent.
func (r *DiaryReadRepository) GetByDate(ctx context.Context, userID int64, date time.Time) (*models.DiaryDB, error) {
	const query = `
		SELECT id, user_id, entry_date, title, content
		FROM diaries
		WHERE user_id = $1 AND entry_date = $2
	`
	args := []any{userID, date.Format("2006-01-02")}

	var entry models.DiaryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &entry, query, args...)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListDays returns the days of the given month on which the user has an
// entry, for marking the calendar grid.
func (r *DiaryReadRepository) ListDays(ctx context.Context, userID int64, year int, month time.Month) ([]int, error) {
	const query = `
		SELECT EXTRACT(DAY FROM entry_date)::int AS day
		FROM diaries
		WHERE user_id = $1 AND entry_date >= $2 AND entry_date < $3
	`
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	args := []any{userID, from.Format("2006-01-02"), from.AddDate(0, 1, 0).Format("2006-01-02")}

	days := []int{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &days, query, args...)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"rows", len(days),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return days, nil
}

type DiaryWriteRepository struct {
	db *sqlx.DB
}

func NewDiaryWriteRepository(db *sqlx.DB) *DiaryWriteRepository {
	return &DiaryWriteRepository{db: db}
}

// Upsert inserts the entry for (user, date) or updates it in place. The
// unique index on (user_id, entry_date) makes this atomic; concurrent writes
// for the same date cannot produce two rows.
func (r *DiaryWriteRepository) Upsert(ctx context.Context, userID int64, date time.Time, title, content string) error {
	const query = `
		INSERT INTO diaries (user_id, entry_date, title, content)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, entry_date) DO UPDATE
		SET title = EXCLUDED.title,
		    content = EXCLUDED.content
	`
	args := []any{userID, date.Format("2006-01-02"), title, content}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"error", err,
	)

	return err
}
