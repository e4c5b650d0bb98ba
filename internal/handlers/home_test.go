package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"dailyhome/internal/handlers"
	"dailyhome/internal/sessions"
)

func TestHomeHandler(t *testing.T) {
	t.Run("visitor sees the login forms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := handlers.NewMockSessionStore(ctrl)
		store.EXPECT().PopFlashes(gomock.Any(), "sid-1").Return(nil, nil)

		rec := httptest.NewRecorder()
		handlers.NewHomeHandler(store, newTestPages(t)).
			ServeHTTP(rec, getRequest("/", anonSession()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "로그인")
		assert.Contains(t, rec.Body.String(), "회원가입")
	})

	t.Run("logged-in user sees the menu", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := handlers.NewMockSessionStore(ctrl)
		store.EXPECT().
			PopFlashes(gomock.Any(), "sid-1").
			Return([]sessions.Flash{{Level: sessions.FlashSuccess, Message: "환영합니다, alice님!"}}, nil)

		rec := httptest.NewRecorder()
		handlers.NewHomeHandler(store, newTestPages(t)).
			ServeHTTP(rec, getRequest("/", userSession()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice")
		assert.Contains(t, rec.Body.String(), "환영합니다")
		assert.Contains(t, rec.Body.String(), "/todos")
	})
}

func TestDashboardHandler(t *testing.T) {
	t.Run("logged in redirects home", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := handlers.NewMockSessionStore(ctrl)

		rec := httptest.NewRecorder()
		handlers.NewDashboardHandler(store).
			ServeHTTP(rec, getRequest("/dashboard", userSession()))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("anonymous gets the login flash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := handlers.NewMockSessionStore(ctrl)
		store.EXPECT().
			AddFlash(gomock.Any(), "sid-1", sessions.FlashError, gomock.Any()).
			Return(nil)

		rec := httptest.NewRecorder()
		handlers.NewDashboardHandler(store).
			ServeHTTP(rec, getRequest("/dashboard", anonSession()))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}
