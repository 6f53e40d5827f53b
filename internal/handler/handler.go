// Package handler serves the dashboard screens. Every resource screen is
// driven by a declarative Screen spec; the handlers translate HTTP requests
// into backend calls and render the results as full pages or htmx fragments.
package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/message"

	"github.com/ilmnur/admin-dashboard/internal/backend"
	"github.com/ilmnur/admin-dashboard/internal/i18n"
	"github.com/ilmnur/admin-dashboard/internal/middleware"
	"github.com/ilmnur/admin-dashboard/internal/service"
	"github.com/ilmnur/admin-dashboard/internal/session"
	"github.com/ilmnur/admin-dashboard/internal/state"
	"github.com/ilmnur/admin-dashboard/internal/ui"
)

const (
	langCookie  = "lang"
	flashCookie = "flash"
	defaultLang = "uz"
)

// Handler wires the dashboard screens to the backend client and the local
// session and state stores.
type Handler struct {
	sessions *session.Store
	client   *backend.Client
	files    *backend.Files
	auth     *service.AuthService
	store    *state.Store
	screens  []*Screen
}

// New creates the handler with the standard screen registry.
func New(client *backend.Client, sessions *session.Store, store *state.Store) *Handler {
	h := &Handler{
		sessions: sessions,
		client:   client,
		files:    backend.NewFiles(client),
		auth:     service.NewAuthService(client, sessions, store),
		store:    store,
	}
	h.screens = screenRegistry(client)
	return h
}

// Routes builds the dashboard router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Handle("/static/*", ui.Static())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/lang/{code}", h.handleLang)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Get("/login", h.handleLoginPage)
		r.Post("/login", h.handleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(h.sessions, "/login"))
		r.Get("/", h.handleHome)
		r.Post("/logout", h.handleLogout)

		r.Post("/files", h.handleFileUpload)
		r.Delete("/files/{id}", h.handleFileRemove)

		r.Get("/activity", h.handleActivity)

		r.Get("/questions/bulk", h.handleQuestionsBulkForm)
		r.Post("/questions/bulk", h.handleQuestionsBulkCreate)
		r.Get("/questions/{id}/answers", h.handleAnswersForm)
		r.Post("/questions/{id}/answers", h.handleAnswersCreate)

		for _, screen := range h.screens {
			h.mountScreen(r, screen)
		}
	})

	r.NotFound(h.handleNotFound)
	return r
}

func (h *Handler) mountScreen(r chi.Router, s *Screen) {
	base := "/" + s.Slug
	r.Get(base, h.listPage(s))
	r.Get(base+"/table", h.tableFragment(s))
	r.Get(base+"/new", h.newForm(s))
	r.Post(base+"/new", h.create(s))
	r.Get(base+"/{id}/view", h.viewModal(s))
	r.Get(base+"/{id}/edit", h.editForm(s))
	r.Post(base+"/{id}/edit", h.update(s))
	r.Get(base+"/{id}/delete", h.confirmDelete(s))
	r.Post(base+"/{id}/delete", h.delete(s))
}

// lang returns the interface language for the request.
func (h *Handler) lang(r *http.Request) string {
	if c, err := r.Cookie(langCookie); err == nil {
		switch c.Value {
		case "uz", "ru", "en":
			return c.Value
		}
	}
	return defaultLang
}

func (h *Handler) printer(r *http.Request) *message.Printer {
	return i18n.Printer(h.lang(r))
}

func (h *Handler) handleLang(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	switch code {
	case "uz", "ru", "en":
	default:
		code = defaultLang
	}
	http.SetCookie(w, &http.Cookie{
		Name:     langCookie,
		Value:    code,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	back := r.Referer()
	if back == "" {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// setFlash queues a one-shot notification for the next full page load.
func setFlash(w http.ResponseWriter, kind, msg string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(kind + "|" + msg))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the pending notification, if any.
func popFlash(w http.ResponseWriter, r *http.Request) *ui.Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:   flashCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	kind, msg, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &ui.Flash{Kind: kind, Message: msg}
}

// nav builds the sidebar, marking the active screen.
func (h *Handler) nav(p *message.Printer, active string) []ui.NavItem {
	items := []ui.NavItem{{URL: "/", Label: p.Sprintf("nav.home"), Active: active == ""}}
	for _, s := range h.screens {
		items = append(items, ui.NavItem{
			URL:    "/" + s.Slug,
			Label:  p.Sprintf(s.TitleKey),
			Active: active == s.Slug,
		})
	}
	items = append(items, ui.NavItem{
		URL:    "/activity",
		Label:  p.Sprintf("nav.activity"),
		Active: active == "activity",
	})
	return items
}

func (h *Handler) username() string {
	if u := h.sessions.User(); u != nil {
		if u.FullName != "" {
			return u.FullName
		}
		return u.Username
	}
	return ""
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)
	nav := h.nav(p, "")
	pg := ui.Page{
		Title:    p.Sprintf("nav.home"),
		Nav:      nav,
		Flash:    popFlash(w, r),
		Lang:     h.lang(r),
		Username: h.username(),
		Content:  ui.Home(nav[1:]),
	}
	ui.RenderPage(w, r, nil, pg.Component(p))
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)
	if !h.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	pg := ui.Page{
		Title:    p.Sprintf("error.not_found"),
		Nav:      h.nav(p, ""),
		Lang:     h.lang(r),
		Username: h.username(),
		Content:  ui.NotFound(p),
	}
	ui.RenderStatus(w, r, http.StatusNotFound, pg.Component(p))
}
