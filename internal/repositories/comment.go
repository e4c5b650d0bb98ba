package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"dailyhome/internal/logger"
	"dailyhome/internal/models"
)

type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByPost returns a post's comments joined with the commenter's username,
// oldest first.
func (r *CommentReadRepository) ListByPost(ctx context.Context, boardID int64) ([]models.CommentRow, error) {
	const query = `
		SELECT c.id, c.board_id, c.user_id, c.content, c.created_at, u.username
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.board_id = $1
		ORDER BY c.created_at ASC
	`

	comments := []models.CommentRow{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &comments, query, boardID)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", []any{boardID},
		"rows", len(comments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return comments, nil
}

type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Create inserts a comment on a post.
func (r *CommentWriteRepository) Create(ctx context.Context, boardID, userID int64, content string) error {
	const query = `
		INSERT INTO comments (board_id, user_id, content, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{boardID, userID, content}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"error", err,
	)

	return err
}
