package middlewares

import (
	"context"
	"net/http"

	"dailyhome/internal/logger"
	"dailyhome/internal/sessions"
)

// SessionTokener verifies and issues the signed session cookie.
type SessionTokener interface {
	GetSessionIDFromRequest(ctx context.Context, r *http.Request) (string, error)
	SetCookie(ctx context.Context, w http.ResponseWriter, sid string) error
}

// SessionLoader loads and creates server-side sessions.
type SessionLoader interface {
	Get(ctx context.Context, sid string) (*sessions.Session, error)
	Create(ctx context.Context) (*sessions.Session, error)
}

// SessionMiddleware resolves the request's session, creating an anonymous one
// when the browser has none, and puts it into the request context. A tampered
// or expired cookie is treated as no cookie.
func SessionMiddleware(store SessionLoader, tok SessionTokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var sess *sessions.Session

			sid, err := tok.GetSessionIDFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("rejected session cookie", "err", err)
				sid = ""
			}
			if sid != "" {
				sess, err = store.Get(ctx, sid)
				if err != nil {
					logger.Log.Errorw("failed to load session", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}
			if sess == nil {
				sess, err = store.Create(ctx)
				if err != nil {
					logger.Log.Errorw("failed to create session", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				if err := tok.SetCookie(ctx, w, sess.SID); err != nil {
					logger.Log.Errorw("failed to set session cookie", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(sessions.NewContext(ctx, sess)))
		})
	}
}

// Flasher queues a flash message for the session.
type Flasher interface {
	AddFlash(ctx context.Context, sid, level, message string) error
}

// RequireLogin gates a route on an authenticated session. Anonymous requests
// get an error flash and a redirect to the landing page, like every protected
// page in the app.
func RequireLogin(store Flasher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess := sessions.FromContext(ctx)
			if sess == nil || !sess.LoggedIn {
				if sess != nil {
					if err := store.AddFlash(ctx, sess.SID, sessions.FlashError, "이 페이지에 접근하려면 로그인해야 합니다."); err != nil {
						logger.Log.Errorw("failed to add flash", "err", err)
					}
				}
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
