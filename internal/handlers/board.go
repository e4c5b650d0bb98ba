package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dailyhome/internal/logger"
	"dailyhome/internal/models"
	"dailyhome/internal/services"
	"dailyhome/internal/sessions"
)

// BoardServicer defines the board operations the board handlers need.
type BoardServicer interface {
	ListPosts(ctx context.Context, search string) ([]models.PostRow, error)
	CreatePost(ctx context.Context, userID int64, title, content string) error
	GetPost(ctx context.Context, id int64) (*models.PostRow, []models.CommentRow, error)
	GetOwnedPost(ctx context.Context, id, userID int64) (*models.PostRow, error)
	UpdatePost(ctx context.Context, id, userID int64, title, content string) error
	DeletePost(ctx context.Context, id, userID int64) error
	AddComment(ctx context.Context, postID, userID int64, content string) error
}

type boardListPage struct {
	basePage
	Posts       []models.PostRow
	SearchQuery string
}

// NewBoardListHandler lists posts, newest first, optionally filtered by the
// query parameter.
func NewBoardListHandler(svc BoardServicer, store SessionStore, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := strings.TrimSpace(r.URL.Query().Get("query"))

		posts, err := svc.ListPosts(r.Context(), search)
		if err != nil {
			logger.Log.Errorw("failed to list posts", "err", err)
			if sess := sessions.FromContext(r.Context()); sess != nil {
				store.AddFlash(r.Context(), sess.SID, sessions.FlashError,
					"게시글 목록을 불러오는 데 실패했습니다.")
			}
		}

		pages.Render(w, "board_list", boardListPage{
			basePage:    newBasePage(r, store),
			Posts:       posts,
			SearchQuery: search,
		})
	}
}

// NewWritePostFormHandler shows the new-post form.
func NewWritePostFormHandler(store SessionStore, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages.Render(w, "write_post", newBasePage(r, store))
	}
}

// NewWritePostHandler creates a post owned by the current user.
func NewWritePostHandler(svc BoardServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := strings.TrimSpace(r.PostFormValue("title"))
		content := strings.TrimSpace(r.PostFormValue("content"))

		if title == "" || content == "" {
			flashRedirect(w, r, store, sessions.FlashError,
				"제목과 내용은 비워둘 수 없습니다.", "/board/write")
			return
		}

		sess := sessions.FromContext(r.Context())
		if err := svc.CreatePost(r.Context(), sess.UserID, title, content); err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글 작성에 실패했습니다. 잠시 후 다시 시도해주세요.", "/board")
			return
		}

		flashRedirect(w, r, store, sessions.FlashSuccess,
			"게시글이 성공적으로 작성되었습니다!", "/board")
	}
}

type viewPostPage struct {
	basePage
	Post     *models.PostRow
	Comments []models.CommentRow
	IsOwner  bool
}

// NewViewPostHandler shows a post with its comments, oldest comment first.
func NewViewPostHandler(svc BoardServicer, store SessionStore, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 찾을 수 없습니다.", "/board")
			return
		}

		post, comments, err := svc.GetPost(r.Context(), id)
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 찾을 수 없습니다.", "/board")
			return
		case err != nil:
			logger.Log.Errorw("failed to load post", "id", id, "err", err)
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 불러오는 데 실패했습니다.", "/board")
			return
		}

		sess := sessions.FromContext(r.Context())
		pages.Render(w, "view_post", viewPostPage{
			basePage: newBasePage(r, store),
			Post:     post,
			Comments: comments,
			IsOwner:  sess != nil && sess.LoggedIn && sess.UserID == post.UserID,
		})
	}
}

type editPostPage struct {
	basePage
	Post *models.PostRow
}

// NewEditPostFormHandler shows the edit form to the post owner.
func NewEditPostFormHandler(svc BoardServicer, store SessionStore, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 찾을 수 없습니다.", "/board")
			return
		}

		sess := sessions.FromContext(r.Context())
		post, err := svc.GetOwnedPost(r.Context(), id, sess.UserID)
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 찾을 수 없습니다.", "/board")
			return
		case errors.Is(err, services.ErrNotOwner):
			flashRedirect(w, r, store, sessions.FlashError,
				"이 게시글을 수정할 권한이 없습니다.", fmt.Sprintf("/board/view/%d", id))
			return
		case err != nil:
			logger.Log.Errorw("failed to load post for edit", "id", id, "err", err)
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 불러오는 데 실패했습니다.", "/board")
			return
		}

		pages.Render(w, "edit_post", editPostPage{
			basePage: newBasePage(r, store),
			Post:     post,
		})
	}
}

// NewEditPostHandler rewrites a post after an ownership check.
func NewEditPostHandler(svc BoardServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 찾을 수 없습니다.", "/board")
			return
		}

		title := strings.TrimSpace(r.PostFormValue("title"))
		content := strings.TrimSpace(r.PostFormValue("content"))
		if title == "" || content == "" {
			flashRedirect(w, r, store, sessions.FlashError,
				"제목과 내용은 비워둘 수 없습니다.", fmt.Sprintf("/board/edit/%d", id))
			return
		}

		sess := sessions.FromContext(r.Context())
		err = svc.UpdatePost(r.Context(), id, sess.UserID, title, content)
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 찾을 수 없습니다.", "/board")
		case errors.Is(err, services.ErrNotOwner):
			flashRedirect(w, r, store, sessions.FlashError,
				"이 게시글을 수정할 권한이 없습니다.", fmt.Sprintf("/board/view/%d", id))
		case err != nil:
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글 수정에 실패했습니다. 잠시 후 다시 시도해주세요.", fmt.Sprintf("/board/view/%d", id))
		default:
			flashRedirect(w, r, store, sessions.FlashSuccess,
				"게시글이 성공적으로 수정되었습니다!", fmt.Sprintf("/board/view/%d", id))
		}
	}
}

// NewDeletePostHandler removes a post after an ownership check. Comments go
// with it.
func NewDeletePostHandler(svc BoardServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 찾을 수 없습니다.", "/board")
			return
		}

		sess := sessions.FromContext(r.Context())
		err = svc.DeletePost(r.Context(), id, sess.UserID)
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 찾을 수 없습니다.", "/board")
		case errors.Is(err, services.ErrNotOwner):
			flashRedirect(w, r, store, sessions.FlashError,
				"이 게시글을 삭제할 권한이 없습니다.", fmt.Sprintf("/board/view/%d", id))
		case err != nil:
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글 삭제에 실패했습니다. 잠시 후 다시 시도해주세요.", "/board")
		default:
			flashRedirect(w, r, store, sessions.FlashSuccess,
				"게시글이 성공적으로 삭제되었습니다!", "/board")
		}
	}
}

// NewAddCommentHandler appends a comment to a post. Any logged-in user may
// comment on any post.
func NewAddCommentHandler(svc BoardServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 찾을 수 없습니다.", "/board")
			return
		}

		content := strings.TrimSpace(r.PostFormValue("content"))
		if content == "" {
			flashRedirect(w, r, store, sessions.FlashError,
				"댓글 내용은 비워둘 수 없습니다.", fmt.Sprintf("/board/view/%d", id))
			return
		}

		sess := sessions.FromContext(r.Context())
		err = svc.AddComment(r.Context(), id, sess.UserID, content)
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			flashRedirect(w, r, store, sessions.FlashError,
				"게시글을 찾을 수 없습니다.", "/board")
		case err != nil:
			flashRedirect(w, r, store, sessions.FlashError,
				"댓글 작성에 실패했습니다. 잠시 후 다시 시도해주세요.", fmt.Sprintf("/board/view/%d", id))
		default:
			flashRedirect(w, r, store, sessions.FlashSuccess,
				"댓글이 성공적으로 작성되었습니다!", fmt.Sprintf("/board/view/%d", id))
		}
	}
}
