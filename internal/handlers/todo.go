package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"dailyhome/internal/calendar"
	"dailyhome/internal/logger"
	"dailyhome/internal/models"
	"dailyhome/internal/services"
	"dailyhome/internal/sessions"
)

// TodoServicer defines the todo operations the todo handlers need.
type TodoServicer interface {
	ListTodos(ctx context.Context, userID int64, status *models.TodoStatus, search string) ([]models.TodoDB, error)
	AddTodo(ctx context.Context, userID int64, task string, due *time.Time, status models.TodoStatus) error
	GetTodo(ctx context.Context, id, userID int64) (*models.TodoDB, error)
	UpdateTodoStatus(ctx context.Context, id, userID int64, status models.TodoStatus) error
	DeleteTodo(ctx context.Context, id, userID int64) error
	RescheduleTodo(ctx context.Context, id, userID int64, due time.Time) (models.TodoStatus, error)
}

type todoListPage struct {
	basePage
	Todos        []models.TodoDB
	StatusFilter string
	SearchQuery  string
	AllStatuses  []models.TodoStatus
}

// NewTodoListHandler lists the user's todos, filtered by status and search
// term. status=all (the default) disables the status filter.
func NewTodoListHandler(svc TodoServicer, store SessionStore, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("status")
		if filter == "" {
			filter = "all"
		}
		search := strings.TrimSpace(r.URL.Query().Get("query"))

		var status *models.TodoStatus
		if filter != "all" {
			parsed, err := models.ParseTodoStatus(filter)
			if err != nil {
				flashRedirect(w, r, store, sessions.FlashError,
					"유효하지 않은 To-Do 상태입니다.", "/todos")
				return
			}
			status = &parsed
		}

		sess := sessions.FromContext(r.Context())
		todos, err := svc.ListTodos(r.Context(), sess.UserID, status, search)
		if err != nil {
			logger.Log.Errorw("failed to list todos", "err", err)
			if addErr := store.AddFlash(r.Context(), sess.SID, sessions.FlashError,
				"To-Do 목록을 불러오는 데 실패했습니다."); addErr != nil {
				logger.Log.Errorw("failed to add flash", "err", addErr)
			}
		}

		pages.Render(w, "todos_list", todoListPage{
			basePage:     newBasePage(r, store),
			Todos:        todos,
			StatusFilter: filter,
			SearchQuery:  search,
			AllStatuses:  models.AllStatuses(),
		})
	}
}

// NewAddTodoHandler creates a todo from the list-page form. The due date is
// optional; the status defaults to incomplete.
func NewAddTodoHandler(svc TodoServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		task := strings.TrimSpace(r.PostFormValue("task"))
		if task == "" {
			flashRedirect(w, r, store, sessions.FlashError,
				"할 일 내용을 비워둘 수 없습니다.", "/todos")
			return
		}

		var due *time.Time
		if raw := strings.TrimSpace(r.PostFormValue("due_date")); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				flashRedirect(w, r, store, sessions.FlashError,
					"유효하지 않은 마감일 형식입니다.", "/todos")
				return
			}
			due = &parsed
		}

		status := models.StatusIncomplete
		if raw := r.PostFormValue("status"); raw != "" {
			parsed, err := models.ParseTodoStatus(raw)
			if err != nil {
				flashRedirect(w, r, store, sessions.FlashError,
					"유효하지 않은 To-Do 상태입니다.", "/todos")
				return
			}
			status = parsed
		}

		sess := sessions.FromContext(r.Context())
		if err := svc.AddTodo(r.Context(), sess.UserID, task, due, status); err != nil {
			logger.Log.Errorw("failed to add todo", "err", err)
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목 추가에 실패했습니다. 잠시 후 다시 시도해주세요.", "/todos")
			return
		}

		flashRedirect(w, r, store, sessions.FlashSuccess,
			"To-Do 항목이 성공적으로 추가되었습니다!", "/todos")
	}
}

// NewUpdateTodoStatusHandler sets the status named in the URL on the user's
// todo.
func NewUpdateTodoStatusHandler(svc TodoServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목을 찾을 수 없거나 권한이 없습니다.", "/todos")
			return
		}

		status, err := models.ParseTodoStatus(chi.URLParam(r, "status"))
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"유효하지 않은 To-Do 상태입니다.", "/todos")
			return
		}

		sess := sessions.FromContext(r.Context())
		err = svc.UpdateTodoStatus(r.Context(), id, sess.UserID, status)
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목을 찾을 수 없거나 권한이 없습니다.", "/todos")
		case err != nil:
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목 상태 업데이트에 실패했습니다. 잠시 후 다시 시도해주세요.", "/todos")
		default:
			flashRedirect(w, r, store, sessions.FlashSuccess,
				"To-Do 항목 상태가 성공적으로 업데이트되었습니다!", "/todos")
		}
	}
}

// NewDeleteTodoHandler removes the user's todo.
func NewDeleteTodoHandler(svc TodoServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목을 찾을 수 없거나 권한이 없습니다.", "/todos")
			return
		}

		sess := sessions.FromContext(r.Context())
		err = svc.DeleteTodo(r.Context(), id, sess.UserID)
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목을 찾을 수 없거나 권한이 없습니다.", "/todos")
		case err != nil:
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목 삭제에 실패했습니다. 잠시 후 다시 시도해주세요.", "/todos")
		default:
			flashRedirect(w, r, store, sessions.FlashSuccess,
				"To-Do 항목이 성공적으로 삭제되었습니다!", "/todos")
		}
	}
}

type reschedulePage struct {
	basePage
	Todo *models.TodoDB
	Grid calendar.Grid
}

// NewRescheduleTodoHandler renders the calendar for picking a new due date.
func NewRescheduleTodoHandler(svc TodoServicer, store SessionStore, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목을 찾을 수 없거나 권한이 없습니다.", "/todos")
			return
		}

		sess := sessions.FromContext(r.Context())
		todo, err := svc.GetTodo(r.Context(), id, sess.UserID)
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목을 찾을 수 없거나 권한이 없습니다.", "/todos")
			return
		case err != nil:
			logger.Log.Errorw("failed to load todo", "id", id, "err", err)
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목 정보를 불러오는 데 실패했습니다.", "/todos")
			return
		}

		year, month, ok := monthFromURL(r, time.Now())
		if !ok {
			flashRedirect(w, r, store, sessions.FlashError,
				"유효하지 않은 연도 또는 월입니다.", fmt.Sprintf("/todos/reschedule/%d", id))
			return
		}

		pages.Render(w, "todos_reschedule", reschedulePage{
			basePage: newBasePage(r, store),
			Todo:     todo,
			Grid:     calendar.MonthGrid(year, month),
		})
	}
}

// NewSetDueDateHandler applies the picked date to the todo and derives the
// new status from the old one.
func NewSetDueDateHandler(svc TodoServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목을 찾을 수 없거나 권한이 없습니다.", "/todos")
			return
		}

		raw := strings.TrimSpace(r.PostFormValue("new_due_date"))
		if raw == "" {
			flashRedirect(w, r, store, sessions.FlashError,
				"새로운 마감일을 선택해야 합니다.", "/todos")
			return
		}
		due, err := time.Parse("2006-01-02", raw)
		if err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"유효하지 않은 날짜 형식입니다.", "/todos")
			return
		}

		sess := sessions.FromContext(r.Context())
		_, err = svc.RescheduleTodo(r.Context(), id, sess.UserID, due)
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			flashRedirect(w, r, store, sessions.FlashError,
				"To-Do 항목을 찾을 수 없거나 권한이 없습니다.", "/todos")
		case err != nil:
			flashRedirect(w, r, store, sessions.FlashError,
				"마감일 재조정에 실패했습니다. 잠시 후 다시 시도해주세요.", "/todos")
		default:
			flashRedirect(w, r, store, sessions.FlashSuccess,
				fmt.Sprintf("할 일의 마감일이 %s로 성공적으로 재조정되었습니다!", raw), "/todos")
		}
	}
}
