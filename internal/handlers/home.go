package handlers

import (
	"net/http"

	"dailyhome/internal/sessions"
)

// NewHomeHandler serves the landing page: the login/register forms for
// visitors, the feature menu for logged-in users.
func NewHomeHandler(store SessionStore, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := newBasePage(r, store)

		sess := sessions.FromContext(r.Context())
		if sess != nil && sess.LoggedIn {
			pages.Render(w, "main_logged_in", page)
			return
		}
		pages.Render(w, "default", page)
	}
}

// NewDashboardHandler keeps the old dashboard path alive as a redirect.
func NewDashboardHandler(store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.FromContext(r.Context())
		if sess == nil || !sess.LoggedIn {
			flashRedirect(w, r, store, sessions.FlashError,
				"이 페이지에 접근하려면 로그인해야 합니다.", "/")
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
