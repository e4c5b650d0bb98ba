package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyhome/internal/handlers"
	"dailyhome/internal/models"
	"dailyhome/internal/services"
	"dailyhome/internal/sessions"
)

// formRequest builds a POST with form values and the given session attached.
func formRequest(target string, form url.Values, sess *sessions.Session) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sess != nil {
		req = req.WithContext(sessions.NewContext(req.Context(), sess))
	}
	return req
}

func anonSession() *sessions.Session {
	return &sessions.Session{SID: "sid-1"}
}

func userSession() *sessions.Session {
	return &sessions.Session{SID: "sid-1", UserID: 7, Username: "alice", LoggedIn: true}
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name      string
		form      url.Values
		setupSvc  func(svc *handlers.MockAuthServicer)
		wantLevel string
	}{
		{
			name:      "empty fields are rejected",
			form:      url.Values{"username": {""}, "password": {"secret"}},
			setupSvc:  func(svc *handlers.MockAuthServicer) {},
			wantLevel: sessions.FlashError,
		},
		{
			name: "taken username",
			form: url.Values{"username": {"alice"}, "password": {"secret"}},
			setupSvc: func(svc *handlers.MockAuthServicer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "secret").
					Return(services.ErrUsernameTaken)
			},
			wantLevel: sessions.FlashError,
		},
		{
			name: "success",
			form: url.Values{"username": {"alice"}, "password": {"secret"}},
			setupSvc: func(svc *handlers.MockAuthServicer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "secret").
					Return(nil)
			},
			wantLevel: sessions.FlashSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := handlers.NewMockAuthServicer(ctrl)
			store := handlers.NewMockSessionStore(ctrl)
			tt.setupSvc(svc)
			store.EXPECT().
				AddFlash(gomock.Any(), "sid-1", tt.wantLevel, gomock.Any()).
				Return(nil)

			rec := httptest.NewRecorder()
			handlers.NewRegisterHandler(svc, store).
				ServeHTTP(rec, formRequest("/register", tt.form, anonSession()))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
		})
	}
}

func TestLoginHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := handlers.NewMockAuthServicer(ctrl)
	store := handlers.NewMockSessionStore(ctrl)

	svc.EXPECT().
		Login(gomock.Any(), "alice", "secret").
		Return(&models.UserDB{ID: 7, Username: "alice"}, nil)
	store.EXPECT().
		Login(gomock.Any(), "sid-1", int64(7), "alice").
		Return(nil)
	store.EXPECT().
		AddFlash(gomock.Any(), "sid-1", sessions.FlashSuccess, gomock.Any()).
		Return(nil)

	rec := httptest.NewRecorder()
	form := url.Values{"username": {"alice"}, "password": {"secret"}}
	handlers.NewLoginHandler(svc, store).
		ServeHTTP(rec, formRequest("/login", form, anonSession()))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := handlers.NewMockAuthServicer(ctrl)
	store := handlers.NewMockSessionStore(ctrl)

	svc.EXPECT().
		Login(gomock.Any(), "alice", "wrong").
		Return(nil, services.ErrInvalidCredentials)

	var flashed string
	store.EXPECT().
		AddFlash(gomock.Any(), "sid-1", sessions.FlashError, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, message string) error {
			flashed = message
			return nil
		})

	rec := httptest.NewRecorder()
	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	handlers.NewLoginHandler(svc, store).
		ServeHTTP(rec, formRequest("/login", form, anonSession()))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	// The same message must cover unknown username and wrong password.
	require.NotEmpty(t, flashed)
	assert.Contains(t, flashed, "잘못된 사용자 이름 또는 비밀번호")
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := handlers.NewMockSessionStore(ctrl)
	store.EXPECT().Logout(gomock.Any(), "sid-1").Return(nil)
	store.EXPECT().
		AddFlash(gomock.Any(), "sid-1", sessions.FlashSuccess, gomock.Any()).
		Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req = req.WithContext(sessions.NewContext(req.Context(), userSession()))
	handlers.NewLogoutHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLogoutHandler_AnonymousSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := handlers.NewMockSessionStore(ctrl)
	store.EXPECT().
		AddFlash(gomock.Any(), "sid-1", sessions.FlashSuccess, gomock.Any()).
		Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req = req.WithContext(sessions.NewContext(req.Context(), anonSession()))
	handlers.NewLogoutHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
}
