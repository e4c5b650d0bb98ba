package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"dailyhome/internal/models"
	"dailyhome/internal/services"
)

func newBoardService(ctrl *gomock.Controller) (*services.BoardService, *services.MockPostReader, *services.MockPostWriter, *services.MockCommentReader, *services.MockCommentWriter) {
	posts := services.NewMockPostReader(ctrl)
	postsW := services.NewMockPostWriter(ctrl)
	comments := services.NewMockCommentReader(ctrl)
	commentsW := services.NewMockCommentWriter(ctrl)
	return services.NewBoardService(posts, postsW, comments, commentsW), posts, postsW, comments, commentsW
}

func TestBoardService_GetPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, posts, _, comments, _ := newBoardService(ctrl)
	ctx := context.Background()

	t.Run("found with comments", func(t *testing.T) {
		post := &models.PostRow{ID: 1, UserID: 2, Title: "Hello", Username: "alice"}
		cs := []models.CommentRow{{ID: 10, BoardID: 1, Content: "Nice!", Username: "bob"}}

		posts.EXPECT().Get(gomock.Any(), int64(1)).Return(post, nil)
		comments.EXPECT().ListByPost(gomock.Any(), int64(1)).Return(cs, nil)

		gotPost, gotComments, err := svc.GetPost(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, post, gotPost)
		assert.Equal(t, cs, gotComments)
	})

	t.Run("not found", func(t *testing.T) {
		posts.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, nil)

		_, _, err := svc.GetPost(ctx, 99)
		assert.ErrorIs(t, err, services.ErrPostNotFound)
	})
}

func TestBoardService_UpdatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, posts, postsW, _, _ := newBoardService(ctrl)
	ctx := context.Background()

	owned := &models.PostRow{ID: 1, UserID: 7, Title: "old", Content: "old"}

	tests := []struct {
		name    string
		post    *models.PostRow
		userID  int64
		wantErr error
	}{
		{name: "owner can edit", post: owned, userID: 7},
		{name: "missing post", post: nil, userID: 7, wantErr: services.ErrPostNotFound},
		{name: "non-owner is rejected", post: owned, userID: 8, wantErr: services.ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts.EXPECT().Get(gomock.Any(), int64(1)).Return(tt.post, nil)
			if tt.wantErr == nil {
				postsW.EXPECT().Update(gomock.Any(), int64(1), "new title", "new content").Return(nil)
			}

			err := svc.UpdatePost(ctx, 1, tt.userID, "new title", "new content")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBoardService_DeletePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, posts, postsW, _, _ := newBoardService(ctrl)
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		posts.EXPECT().Get(gomock.Any(), int64(3)).Return(&models.PostRow{ID: 3, UserID: 5}, nil)
		postsW.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

		assert.NoError(t, svc.DeletePost(ctx, 3, 5))
	})

	t.Run("non-owner leaves the row untouched", func(t *testing.T) {
		posts.EXPECT().Get(gomock.Any(), int64(3)).Return(&models.PostRow{ID: 3, UserID: 5}, nil)

		err := svc.DeletePost(ctx, 3, 6)
		assert.ErrorIs(t, err, services.ErrNotOwner)
	})
}

func TestBoardService_AddComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, posts, _, _, commentsW := newBoardService(ctrl)
	ctx := context.Background()

	t.Run("any logged-in user may comment", func(t *testing.T) {
		posts.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.PostRow{ID: 1, UserID: 2}, nil)
		commentsW.EXPECT().Create(gomock.Any(), int64(1), int64(9), "Nice!").Return(nil)

		assert.NoError(t, svc.AddComment(ctx, 1, 9, "Nice!"))
	})

	t.Run("missing post", func(t *testing.T) {
		posts.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, nil)

		err := svc.AddComment(ctx, 42, 9, "Nice!")
		assert.ErrorIs(t, err, services.ErrPostNotFound)
	})

	t.Run("writer error surfaces", func(t *testing.T) {
		posts.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.PostRow{ID: 1}, nil)
		commentsW.EXPECT().Create(gomock.Any(), int64(1), int64(9), "x").Return(errors.New("db error"))

		assert.Error(t, svc.AddComment(ctx, 1, 9, "x"))
	})
}
