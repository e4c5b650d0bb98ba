// Package sessions keeps the server-side session state in Redis: the
// authenticated identity, if any, and the queue of flash messages waiting for
// the next rendered page.
package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Flash levels as used by the templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is one pending status message.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Session is the per-request view of the session state.
type Session struct {
	SID      string
	UserID   int64
	Username string
	LoggedIn bool
}

// Store persists sessions and flash queues in Redis.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a Store with the given session lifetime.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func sessionKey(sid string) string { return fmt.Sprintf("dh:session:%s", sid) }
func flashKey(sid string) string   { return fmt.Sprintf("dh:flash:%s", sid) }

// Create makes a new anonymous session and returns it. Anonymous sessions
// exist so flash messages work before login.
func (s *Store) Create(ctx context.Context) (*Session, error) {
	sid := uuid.New().String()
	if err := s.rdb.HSet(ctx, sessionKey(sid), "logged_in", "0").Err(); err != nil {
		return nil, err
	}
	if err := s.rdb.Expire(ctx, sessionKey(sid), s.ttl).Err(); err != nil {
		return nil, err
	}
	return &Session{SID: sid}, nil
}

// Get loads the session for sid. Returns (nil, nil) when it does not exist.
func (s *Store) Get(ctx context.Context, sid string) (*Session, error) {
	vals, err := s.rdb.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}

	sess := &Session{SID: sid}
	if vals["logged_in"] == "1" {
		sess.LoggedIn = true
		sess.Username = vals["username"]
		fmt.Sscanf(vals["user_id"], "%d", &sess.UserID)
	}
	return sess, nil
}

// Login binds an authenticated identity to the session and refreshes its TTL.
func (s *Store) Login(ctx context.Context, sid string, userID int64, username string) error {
	key := sessionKey(sid)
	if err := s.rdb.HSet(ctx, key,
		"logged_in", "1",
		"user_id", fmt.Sprintf("%d", userID),
		"username", username,
	).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, s.ttl).Err()
}

// Logout clears the identity unconditionally. The session itself survives so
// the logout flash can still be delivered on the next page.
func (s *Store) Logout(ctx context.Context, sid string) error {
	key := sessionKey(sid)
	if err := s.rdb.HSet(ctx, key, "logged_in", "0").Err(); err != nil {
		return err
	}
	return s.rdb.HDel(ctx, key, "user_id", "username").Err()
}

// AddFlash queues a status message for the next rendered page.
func (s *Store) AddFlash(ctx context.Context, sid, level, message string) error {
	raw, err := json.Marshal(Flash{Level: level, Message: message})
	if err != nil {
		return err
	}
	key := flashKey(sid)
	if err := s.rdb.RPush(ctx, key, raw).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, s.ttl).Err()
}

// PopFlashes drains and returns the pending flash messages, oldest first.
func (s *Store) PopFlashes(ctx context.Context, sid string) ([]Flash, error) {
	key := flashKey(sid)

	pipe := s.rdb.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	raws, err := rangeCmd.Result()
	if err != nil {
		return nil, err
	}

	flashes := make([]Flash, 0, len(raws))
	for _, raw := range raws {
		var f Flash
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var sessionCtxKey = contextKey{}

// NewContext stores the session in the context.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, sess)
}

// FromContext retrieves the session from the context. Returns nil if not present.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionCtxKey).(*Session)
	return sess
}
