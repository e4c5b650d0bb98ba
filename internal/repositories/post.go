package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"dailyhome/internal/logger"
	"dailyhome/internal/models"
)

type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// List returns posts joined with their author, newest first. A non-empty
// search filters on title or content, case-insensitively.
func (r *PostReadRepository) List(ctx context.Context, search string) ([]models.PostRow, error) {
	query := `
		SELECT b.id, b.user_id, b.title, b.content, b.created_at, b.updated_at, u.username
		FROM board b
		JOIN users u ON b.user_id = u.id
	`
	var args []any
	if search != "" {
		query += ` WHERE b.title ILIKE $1 OR b.content ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY b.created_at DESC`

	posts := []models.PostRow{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &posts, query, args...)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"rows", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Get returns one post with its author, or nil when absent.
func (r *PostReadRepository) Get(ctx context.Context, id int64) (*models.PostRow, error) {
	const query = `
		SELECT b.id, b.user_id, b.title, b.content, b.created_at, b.updated_at, u.username
		FROM board b
		JOIN users u ON b.user_id = u.id
		WHERE b.id = $1
	`

	var post models.PostRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &post, query, id)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

type PostWriteRepository struct {
	db *sqlx.DB
}

func NewPostWriteRepository(db *sqlx.DB) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

// Create inserts a new post owned by userID.
func (r *PostWriteRepository) Create(ctx context.Context, userID int64, title, content string) error {
	const query = `
		INSERT INTO board (user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	args := []any{userID, title, content}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"error", err,
	)

	return err
}

// Update rewrites title and content and bumps updated_at. Ownership is
// checked by the service before calling.
func (r *PostWriteRepository) Update(ctx context.Context, id int64, title, content string) error {
	const query = `
		UPDATE board
		SET title = $2, content = $3, updated_at = NOW()
		WHERE id = $1
	`
	args := []any{id, title, content}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes a post. Comments go with it via the FK cascade.
func (r *PostWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM board WHERE id = $1`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, id)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", []any{id},
		"error", err,
	)

	return err
}
