package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dailyhome/internal/logger"
	"dailyhome/internal/models"
	"dailyhome/internal/services"
	"dailyhome/internal/sessions"
)

// AuthServicer defines the account operations the auth handlers need.
type AuthServicer interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*models.UserDB, error)
}

// NewRegisterHandler creates a user account from the landing-page form.
func NewRegisterHandler(svc AuthServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := strings.TrimSpace(r.PostFormValue("username"))
		password := strings.TrimSpace(r.PostFormValue("password"))

		if username == "" || password == "" {
			flashRedirect(w, r, store, sessions.FlashError,
				"사용자 이름과 비밀번호를 비워둘 수 없습니다.", "/")
			return
		}

		err := svc.Register(r.Context(), username, password)
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			flashRedirect(w, r, store, sessions.FlashError,
				"이미 존재하는 사용자 이름입니다. 다른 이름을 선택해주세요.", "/")
		case err != nil:
			logger.Log.Errorw("registration failed", "username", username, "err", err)
			flashRedirect(w, r, store, sessions.FlashError,
				"회원가입에 실패했습니다. 잠시 후 다시 시도해주세요.", "/")
		default:
			flashRedirect(w, r, store, sessions.FlashSuccess,
				"회원가입에 성공했습니다! 이제 로그인할 수 있습니다.", "/")
		}
	}
}

// NewLoginHandler authenticates the form credentials and binds the identity
// to the caller's session.
func NewLoginHandler(svc AuthServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := strings.TrimSpace(r.PostFormValue("username"))
		password := strings.TrimSpace(r.PostFormValue("password"))

		if username == "" || password == "" {
			flashRedirect(w, r, store, sessions.FlashError,
				"사용자 이름과 비밀번호를 모두 입력해주세요.", "/")
			return
		}

		user, err := svc.Login(r.Context(), username, password)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			flashRedirect(w, r, store, sessions.FlashError,
				"잘못된 사용자 이름 또는 비밀번호입니다. 다시 시도해주세요.", "/")
			return
		case err != nil:
			logger.Log.Errorw("login failed", "username", username, "err", err)
			flashRedirect(w, r, store, sessions.FlashError,
				"로그인에 실패했습니다. 잠시 후 다시 시도해주세요.", "/")
			return
		}

		sess := sessions.FromContext(r.Context())
		if sess == nil {
			// Session middleware always provides one; this is a wiring bug.
			logger.Log.Errorw("login reached without a session")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if err := store.Login(r.Context(), sess.SID, user.ID, user.Username); err != nil {
			logger.Log.Errorw("failed to bind session", "err", err)
			flashRedirect(w, r, store, sessions.FlashError,
				"로그인에 실패했습니다. 잠시 후 다시 시도해주세요.", "/")
			return
		}

		flashRedirect(w, r, store, sessions.FlashSuccess,
			fmt.Sprintf("환영합니다, %s님!", user.Username), "/dashboard")
	}
}

// NewLogoutHandler drops the authenticated identity from the session.
func NewLogoutHandler(store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.FromContext(r.Context())
		if sess != nil && sess.LoggedIn {
			if err := store.Logout(r.Context(), sess.SID); err != nil {
				logger.Log.Errorw("failed to clear session", "err", err)
			}
		}
		flashRedirect(w, r, store, sessions.FlashSuccess,
			"성공적으로 로그아웃되었습니다.", "/")
	}
}
