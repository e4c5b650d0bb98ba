package models

import "time"

// DiaryDB represents a diary entry record in the database.
// At most one entry exists per (user_id, entry_date), enforced by a unique index.
type DiaryDB struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	EntryDate time.Time `json:"entry_date" db:"entry_date"` // Date only, no time component
	Title     string    `json:"title" db:"title"`           // Optional
	Content   string    `json:"content" db:"content"`
}
