// Package repositories holds the sqlx data access layer. Every method runs
// against the request transaction when the tx middleware has installed one,
// and against the pool otherwise.
package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"dailyhome/internal/middlewares"
)

// ErrConflict is returned when a statement violates a unique constraint.
var ErrConflict = errors.New("unique constraint violation")

// executor picks the request transaction from the context, falling back to db.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// oneline collapses a query to a single line for logging.
func oneline(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

// isUniqueViolation reports whether err is a Postgres unique violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
