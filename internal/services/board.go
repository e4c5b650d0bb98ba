package services

import (
	"context"
	"errors"

	"dailyhome/internal/logger"
	"dailyhome/internal/metrics"
	"dailyhome/internal/models"
)

// Error variables
var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotOwner     = errors.New("not the post owner")
)

// PostReader defines read-only operations for board posts.
type PostReader interface {
	List(ctx context.Context, search string) ([]models.PostRow, error)
	Get(ctx context.Context, id int64) (*models.PostRow, error)
}

// PostWriter defines write operations for board posts.
type PostWriter interface {
	Create(ctx context.Context, userID int64, title, content string) error
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
}

// CommentReader defines read-only operations for comments.
type CommentReader interface {
	ListByPost(ctx context.Context, boardID int64) ([]models.CommentRow, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Create(ctx context.Context, boardID, userID int64, content string) error
}

// BoardService handles the shared discussion board.
type BoardService struct {
	posts         PostReader
	postsWriter   PostWriter
	comments      CommentReader
	commentWriter CommentWriter
}

// NewBoardService creates a new BoardService instance.
func NewBoardService(posts PostReader, postsWriter PostWriter, comments CommentReader, commentWriter CommentWriter) *BoardService {
	return &BoardService{
		posts:         posts,
		postsWriter:   postsWriter,
		comments:      comments,
		commentWriter: commentWriter,
	}
}

// ListPosts returns posts newest first, filtered by the search term when set.
func (svc *BoardService) ListPosts(ctx context.Context, search string) ([]models.PostRow, error) {
	return svc.posts.List(ctx, search)
}

// CreatePost inserts a post owned by userID.
func (svc *BoardService) CreatePost(ctx context.Context, userID int64, title, content string) error {
	if err := svc.postsWriter.Create(ctx, userID, title, content); err != nil {
		logger.Log.Errorw("failed to create post", "err", err)
		return err
	}
	metrics.IncPostCreated()
	return nil
}

// GetPost returns a post and its comments, oldest comment first.
func (svc *BoardService) GetPost(ctx context.Context, id int64) (*models.PostRow, []models.CommentRow, error) {
	post, err := svc.posts.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, ErrPostNotFound
	}

	comments, err := svc.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

// GetOwnedPost returns the post when it exists and belongs to userID.
func (svc *BoardService) GetOwnedPost(ctx context.Context, id, userID int64) (*models.PostRow, error) {
	post, err := svc.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != userID {
		return nil, ErrNotOwner
	}
	return post, nil
}

// UpdatePost rewrites an owned post.
func (svc *BoardService) UpdatePost(ctx context.Context, id, userID int64, title, content string) error {
	if _, err := svc.GetOwnedPost(ctx, id, userID); err != nil {
		return err
	}
	return svc.postsWriter.Update(ctx, id, title, content)
}

// DeletePost removes an owned post together with its comments.
func (svc *BoardService) DeletePost(ctx context.Context, id, userID int64) error {
	if _, err := svc.GetOwnedPost(ctx, id, userID); err != nil {
		return err
	}
	return svc.postsWriter.Delete(ctx, id)
}

// AddComment inserts a comment under userID. Any logged-in user may comment
// on any post; only the post itself must exist.
func (svc *BoardService) AddComment(ctx context.Context, postID, userID int64, content string) error {
	post, err := svc.posts.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if err := svc.commentWriter.Create(ctx, postID, userID, content); err != nil {
		logger.Log.Errorw("failed to create comment", "err", err)
		return err
	}
	metrics.IncCommentCreated()
	return nil
}
