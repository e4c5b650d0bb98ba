package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyhome/internal/repositories"
)

func TestCommentReadRepository_ListByPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewCommentReadRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "board_id", "user_id", "content", "created_at", "username"}).
		AddRow(int64(1), int64(3), int64(8), "first!", now.Add(-time.Minute), "bob").
		AddRow(int64(2), int64(3), int64(7), "thanks", now, "alice")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.board_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	comments, err := repo.ListByPost(context.Background(), 3)
	assert.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first!", comments[0].Content)
	assert.Equal(t, "alice", comments[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewCommentWriteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs(int64(3), int64(7), "Nice!").
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.Create(context.Background(), 3, 7, "Nice!"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
