package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"dailyhome/internal/sessions"
)

func TestSessionMiddleware_ExistingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := NewMockSessionLoader(ctrl)
	tok := NewMockSessionTokener(ctrl)

	want := &sessions.Session{SID: "sid-1", UserID: 7, Username: "alice", LoggedIn: true}

	tok.EXPECT().GetSessionIDFromRequest(gomock.Any(), gomock.Any()).Return("sid-1", nil)
	loader.EXPECT().Get(gomock.Any(), "sid-1").Return(want, nil)

	var got *sessions.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = sessions.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := SessionMiddleware(loader, tok)(next)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, want, got)
}

func TestSessionMiddleware_CreatesAnonymousSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := NewMockSessionLoader(ctrl)
	tok := NewMockSessionTokener(ctrl)

	created := &sessions.Session{SID: "sid-new"}

	tok.EXPECT().GetSessionIDFromRequest(gomock.Any(), gomock.Any()).Return("", nil)
	loader.EXPECT().Create(gomock.Any()).Return(created, nil)
	tok.EXPECT().SetCookie(gomock.Any(), gomock.Any(), "sid-new").Return(nil)

	var got *sessions.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = sessions.FromContext(r.Context())
	})

	handler := SessionMiddleware(loader, tok)(next)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, created, got)
}

func TestSessionMiddleware_TamperedCookieFallsBackToNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := NewMockSessionLoader(ctrl)
	tok := NewMockSessionTokener(ctrl)

	tok.EXPECT().GetSessionIDFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("signature invalid"))
	loader.EXPECT().Create(gomock.Any()).Return(&sessions.Session{SID: "sid-2"}, nil)
	tok.EXPECT().SetCookie(gomock.Any(), gomock.Any(), "sid-2").Return(nil)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

	handler := SessionMiddleware(loader, tok)(next)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, nextCalled)
}

func TestSessionMiddleware_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := NewMockSessionLoader(ctrl)
	tok := NewMockSessionTokener(ctrl)

	tok.EXPECT().GetSessionIDFromRequest(gomock.Any(), gomock.Any()).Return("sid-1", nil)
	loader.EXPECT().Get(gomock.Any(), "sid-1").Return(nil, errors.New("redis down"))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not run")
	})

	handler := SessionMiddleware(loader, tok)(next)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRequireLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("logged in passes", func(t *testing.T) {
		flasher := NewMockFlasher(ctrl)

		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

		handler := RequireLogin(flasher)(next)

		req := httptest.NewRequest(http.MethodGet, "/board", nil)
		sess := &sessions.Session{SID: "sid-1", UserID: 1, Username: "alice", LoggedIn: true}
		req = req.WithContext(sessions.NewContext(req.Context(), sess))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.True(t, nextCalled)
	})

	t.Run("anonymous is flashed and redirected", func(t *testing.T) {
		flasher := NewMockFlasher(ctrl)
		flasher.EXPECT().
			AddFlash(gomock.Any(), "sid-2", sessions.FlashError, gomock.Any()).
			Return(nil)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next must not run")
		})

		handler := RequireLogin(flasher)(next)

		req := httptest.NewRequest(http.MethodGet, "/board", nil)
		req = req.WithContext(sessions.NewContext(req.Context(), &sessions.Session{SID: "sid-2"}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("no session at all redirects", func(t *testing.T) {
		flasher := NewMockFlasher(ctrl)

		handler := RequireLogin(flasher)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next must not run")
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/board", nil))

		assert.Equal(t, http.StatusFound, rr.Code)
	})
}
