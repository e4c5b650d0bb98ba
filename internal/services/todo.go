package services

import (
	"context"
	"errors"
	"time"

	"dailyhome/internal/logger"
	"dailyhome/internal/metrics"
	"dailyhome/internal/models"
)

// ErrTodoNotFound deliberately covers both a missing todo and one owned by
// another user, so existence never leaks across owners.
var ErrTodoNotFound = errors.New("todo not found or not owned")

// TodoReader defines read-only operations for todos.
type TodoReader interface {
	List(ctx context.Context, userID int64, status *models.TodoStatus, search string) ([]models.TodoDB, error)
	Get(ctx context.Context, id, userID int64) (*models.TodoDB, error)
}

// TodoWriter defines write operations for todos.
type TodoWriter interface {
	Create(ctx context.Context, userID int64, task string, due *time.Time, status models.TodoStatus) error
	UpdateStatus(ctx context.Context, id, userID int64, status models.TodoStatus) (int64, error)
	SetDueDate(ctx context.Context, id, userID int64, due time.Time, status models.TodoStatus) (int64, error)
	Delete(ctx context.Context, id, userID int64) (int64, error)
}

// TodoService handles the per-user todo list.
type TodoService struct {
	reader TodoReader
	writer TodoWriter
}

// NewTodoService creates a new TodoService instance.
func NewTodoService(reader TodoReader, writer TodoWriter) *TodoService {
	return &TodoService{reader: reader, writer: writer}
}

// ListTodos returns the user's todos, newest-created first. status nil means
// no status filter.
func (svc *TodoService) ListTodos(ctx context.Context, userID int64, status *models.TodoStatus, search string) ([]models.TodoDB, error) {
	return svc.reader.List(ctx, userID, status, search)
}

// AddTodo inserts a todo. due may be nil.
func (svc *TodoService) AddTodo(ctx context.Context, userID int64, task string, due *time.Time, status models.TodoStatus) error {
	return svc.writer.Create(ctx, userID, task, due, status)
}

// GetTodo returns the user's todo or ErrTodoNotFound.
func (svc *TodoService) GetTodo(ctx context.Context, id, userID int64) (*models.TodoDB, error) {
	todo, err := svc.reader.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

// UpdateTodoStatus sets the status of the user's todo.
func (svc *TodoService) UpdateTodoStatus(ctx context.Context, id, userID int64, status models.TodoStatus) error {
	affected, err := svc.writer.UpdateStatus(ctx, id, userID, status)
	if err != nil {
		logger.Log.Errorw("failed to update todo status", "err", err)
		return err
	}
	if affected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// DeleteTodo removes the user's todo.
func (svc *TodoService) DeleteTodo(ctx context.Context, id, userID int64) error {
	affected, err := svc.writer.Delete(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete todo", "err", err)
		return err
	}
	if affected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// RescheduleTodo moves the due date and derives the new status:
// a done todo reopens as incomplete, an extended one stays extended, and
// anything else becomes in-progress. Returns the resulting status.
func (svc *TodoService) RescheduleTodo(ctx context.Context, id, userID int64, due time.Time) (models.TodoStatus, error) {
	todo, err := svc.reader.Get(ctx, id, userID)
	if err != nil {
		return "", err
	}
	if todo == nil {
		return "", ErrTodoNotFound
	}

	var next models.TodoStatus
	switch todo.Status {
	case models.StatusDone:
		next = models.StatusIncomplete
	case models.StatusExtended:
		next = models.StatusExtended
	default:
		next = models.StatusInProgress
	}

	affected, err := svc.writer.SetDueDate(ctx, id, userID, due, next)
	if err != nil {
		logger.Log.Errorw("failed to reschedule todo", "err", err)
		return "", err
	}
	if affected == 0 {
		return "", ErrTodoNotFound
	}

	metrics.IncTodoReschedule(string(next))
	return next, nil
}
