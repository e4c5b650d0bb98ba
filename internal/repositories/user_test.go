package repositories_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyhome/internal/repositories"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewUserReadRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(int64(7), "alice", "$2a$10$hash", time.Now())
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at")).
			WithArgs("alice").
			WillReturnRows(rows)

		user, err := repo.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at")).
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

		user, err := repo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewUserWriteRepository(db)
	ctx := context.Background()

	t.Run("inserts", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("alice", "$2a$10$hash").
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.Create(ctx, "alice", "$2a$10$hash"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username maps to ErrConflict", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("alice", "$2a$10$hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		err := repo.Create(ctx, "alice", "$2a$10$hash")
		assert.ErrorIs(t, err, repositories.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other errors pass through", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("alice", "$2a$10$hash").
			WillReturnError(dbErr)

		err := repo.Create(ctx, "alice", "$2a$10$hash")
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
