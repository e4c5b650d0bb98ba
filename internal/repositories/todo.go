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

type TodoReadRepository struct {
	db *sqlx.DB
}

func NewTodoReadRepository(db *sqlx.DB) *TodoReadRepository {
	return &TodoReadRepository{db: db}
}

// List returns the user's todos newest-created first, optionally filtered by
// exact status and/or task substring.
func (r *TodoReadRepository) List(ctx context.Context, userID int64, status *models.TodoStatus, search string) ([]models.TodoDB, error) {
	query := `
		SELECT id, user_id, task, due_date, status, created_at
		FROM todos
		WHERE user_id = $1
	`
	args := []any{userID}

	if status != nil {
		args = append(args, *status)
		query += ` AND status = $2`
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		if status != nil {
			query += ` AND task ILIKE $3`
		} else {
			query += ` AND task ILIKE $2`
		}
	}
	query += ` ORDER BY created_at DESC`

	todos := []models.TodoDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &todos, query, args...)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"rows", len(todos),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return todos, nil
}

// Get returns the todo only when it exists and belongs to userID; nil
// otherwise. Callers cannot distinguish missing from not-owned, matching the
// single "not found or not yours" outcome.
func (r *TodoReadRepository) Get(ctx context.Context, id, userID int64) (*models.TodoDB, error) {
	const query = `
		SELECT id, user_id, task, due_date, status, created_at
		FROM todos
		WHERE id = $1 AND user_id = $2
	`
	args := []any{id, userID}

	var todo models.TodoDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &todo, query, args...)

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
	return &todo, nil
}

type TodoWriteRepository struct {
	db *sqlx.DB
}

func NewTodoWriteRepository(db *sqlx.DB) *TodoWriteRepository {
	return &TodoWriteRepository{db: db}
}

// Create inserts a new todo. due may be nil.
func (r *TodoWriteRepository) Create(ctx context.Context, userID int64, task string, due *time.Time, status models.TodoStatus) error {
	const query = `
		INSERT INTO todos (user_id, task, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	var dueArg any
	if due != nil {
		dueArg = due.Format("2006-01-02")
	}
	args := []any{userID, task, dueArg, status}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateStatus sets the status of the user's todo. The WHERE clause carries
// the ownership check; zero affected rows means missing or not owned.
func (r *TodoWriteRepository) UpdateStatus(ctx context.Context, id, userID int64, status models.TodoStatus) (int64, error) {
	const query = `
		UPDATE todos
		SET status = $3
		WHERE id = $1 AND user_id = $2
	`
	args := []any{id, userID, status}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"affected", affected,
		"error", err,
	)

	return affected, err
}

// SetDueDate reschedules the user's todo, writing the new due date and the
// status derived by the service in one conditional statement.
func (r *TodoWriteRepository) SetDueDate(ctx context.Context, id, userID int64, due time.Time, status models.TodoStatus) (int64, error) {
	const query = `
		UPDATE todos
		SET due_date = $3, status = $4
		WHERE id = $1 AND user_id = $2
	`
	args := []any{id, userID, due.Format("2006-01-02"), status}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"affected", affected,
		"error", err,
	)

	return affected, err
}

// Delete removes the user's todo. Zero affected rows means missing or not owned.
func (r *TodoWriteRepository) Delete(ctx context.Context, id, userID int64) (int64, error) {
	const query = `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	args := []any{id, userID}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", oneline(query),
		"args", args,
		"affected", affected,
		"error", err,
	)

	return affected, err
}
