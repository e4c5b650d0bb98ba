package models

import (
	"errors"
	"time"
)

// TodoStatus is the closed set of todo states. Values are persisted as the
// ASCII tokens below; display labels belong to the template layer.
type TodoStatus string

const (
	StatusIncomplete TodoStatus = "incomplete"
	StatusInProgress TodoStatus = "in_progress"
	StatusDone       TodoStatus = "done"
	StatusExtended   TodoStatus = "extended"
)

// ErrUnknownStatus is returned when a string does not name a todo status.
var ErrUnknownStatus = errors.New("unknown todo status")

// AllStatuses lists every status in display order.
func AllStatuses() []TodoStatus {
	return []TodoStatus{StatusIncomplete, StatusInProgress, StatusDone, StatusExtended}
}

// ParseTodoStatus maps a persisted or URL token to a TodoStatus.
func ParseTodoStatus(s string) (TodoStatus, error) {
	switch TodoStatus(s) {
	case StatusIncomplete, StatusInProgress, StatusDone, StatusExtended:
		return TodoStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// Label returns the user-facing Korean label for a status.
func (s TodoStatus) Label() string {
	switch s {
	case StatusIncomplete:
		return "미완료"
	case StatusInProgress:
		return "진행중"
	case StatusDone:
		return "완료"
	case StatusExtended:
		return "기간연장"
	}
	return string(s)
}

// TodoDB represents a todo record in the database
type TodoDB struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"user_id"`
	Task      string     `json:"task" db:"task"`
	DueDate   *time.Time `json:"due_date" db:"due_date"` // Optional
	Status    TodoStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
