package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"dailyhome/internal/logger"
	"dailyhome/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, username)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a new user. The UNIQUE constraint on username is the
// authoritative duplicate check; violations come back as ErrConflict.
func (r *UserWriteRepository) Create(ctx context.Context, username, passwordHash string) error {
	const query = `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, NOW())
	`
	args := []any{username, passwordHash}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", []any{username, "<hash>"},
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}
