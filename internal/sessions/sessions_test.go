package sessions_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyhome/internal/sessions"
)

func newTestStore(t *testing.T) (*sessions.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return sessions.NewStore(rdb, time.Hour), mr
}

func TestStore_CreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sess.SID)
	assert.False(t, sess.LoggedIn)

	got, err := store.Get(ctx, sess.SID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.SID, got.SID)
	assert.False(t, got.LoggedIn)
}

func TestStore_Get_UnknownSID(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), "no-such-sid")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoginLogout(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Login(ctx, sess.SID, 7, "alice"))

	got, err := store.Get(ctx, sess.SID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.LoggedIn)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "alice", got.Username)

	// Logout drops the identity but keeps the session alive for flashes.
	require.NoError(t, store.Logout(ctx, sess.SID))

	got, err = store.Get(ctx, sess.SID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.LoggedIn)
	assert.Zero(t, got.UserID)
	assert.Empty(t, got.Username)
}

func TestStore_Flashes_PoppedExactlyOnce(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, store.AddFlash(ctx, sess.SID, sessions.FlashError, "첫 번째"))
	require.NoError(t, store.AddFlash(ctx, sess.SID, sessions.FlashSuccess, "두 번째"))

	flashes, err := store.PopFlashes(ctx, sess.SID)
	require.NoError(t, err)
	require.Len(t, flashes, 2)
	assert.Equal(t, sessions.Flash{Level: sessions.FlashError, Message: "첫 번째"}, flashes[0])
	assert.Equal(t, sessions.Flash{Level: sessions.FlashSuccess, Message: "두 번째"}, flashes[1])

	flashes, err = store.PopFlashes(ctx, sess.SID)
	require.NoError(t, err)
	assert.Empty(t, flashes)
}

func TestStore_SessionExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	got, err := store.Get(ctx, sess.SID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
