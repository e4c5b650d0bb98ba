package models

import "time"

// CommentDB represents a comment record in the database
type CommentDB struct {
	ID        int64     `json:"id" db:"id"`
	BoardID   int64     `json:"board_id" db:"board_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CommentRow is a comment joined with the commenter's username.
type CommentRow struct {
	ID        int64     `json:"id" db:"id"`
	BoardID   int64     `json:"board_id" db:"board_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Username  string    `json:"username" db:"username"`
}
