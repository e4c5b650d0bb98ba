package handlers

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dailyhome/internal/logger"
	"dailyhome/internal/models"
	"dailyhome/internal/sessions"
	"dailyhome/web"
)

// SessionStore is what handlers need from the session layer: identity
// switches and the flash queue.
type SessionStore interface {
	Login(ctx context.Context, sid string, userID int64, username string) error
	Logout(ctx context.Context, sid string) error
	AddFlash(ctx context.Context, sid, level, message string) error
	PopFlashes(ctx context.Context, sid string) ([]sessions.Flash, error)
}

// pageNames lists every page template; each is parsed against the shared layout.
var pageNames = []string{
	"default",
	"main_logged_in",
	"board_list",
	"write_post",
	"view_post",
	"edit_post",
	"diary_calendar",
	"diary_entry",
	"todos_list",
	"todos_reschedule",
}

// Pages renders the server-side templates.
type Pages struct {
	templates map[string]*template.Template
}

// NewPages parses the embedded templates.
func NewPages() (*Pages, error) {
	funcs := template.FuncMap{
		"statusLabel": func(s models.TodoStatus) string { return s.Label() },
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(web.Templates, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = t
	}
	return &Pages{templates: templates}, nil
}

// Render executes the named page. Render failures are logged; headers are
// already committed by then, so nothing more can be sent to the client.
func (p *Pages) Render(w http.ResponseWriter, name string, data any) {
	t, ok := p.templates[name]
	if !ok {
		logger.Log.Errorw("unknown template", "name", name)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		logger.Log.Errorw("failed to render template", "name", name, "err", err)
	}
}

// basePage carries what the layout needs on every page.
type basePage struct {
	Username string
	Flashes  []sessions.Flash
}

// newBasePage pops the pending flashes for the current session.
func newBasePage(r *http.Request, store SessionStore) basePage {
	page := basePage{}
	sess := sessions.FromContext(r.Context())
	if sess == nil {
		return page
	}
	page.Username = sess.Username

	flashes, err := store.PopFlashes(r.Context(), sess.SID)
	if err != nil {
		logger.Log.Errorw("failed to pop flashes", "err", err)
		return page
	}
	page.Flashes = flashes
	return page
}

// flashRedirect queues a flash for the session and redirects.
func flashRedirect(w http.ResponseWriter, r *http.Request, store SessionStore, level, message, target string) {
	if sess := sessions.FromContext(r.Context()); sess != nil {
		if err := store.AddFlash(r.Context(), sess.SID, level, message); err != nil {
			logger.Log.Errorw("failed to add flash", "err", err)
		}
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// urlID parses the {id} route parameter.
func urlID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
