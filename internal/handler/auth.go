package handler

import (
	"errors"
	"net/http"

	"github.com/ilmnur/admin-dashboard/internal/model"
	"github.com/ilmnur/admin-dashboard/internal/service"
	"github.com/ilmnur/admin-dashboard/internal/ui"
)

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	p := h.printer(r)
	ui.RenderPage(w, r, nil, ui.LoginPage(h.lang(r), "", "", p))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)

	if err := r.ParseForm(); err != nil {
		ui.RenderStatus(w, r, http.StatusBadRequest, ui.LoginPage(h.lang(r), "", p.Sprintf("login.failed"), p))
		return
	}

	req := model.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	err := h.auth.Login(r.Context(), req)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, service.ErrUsernameRequired),
		errors.Is(err, service.ErrPasswordRequired):
		ui.RenderStatus(w, r, http.StatusUnprocessableEntity,
			ui.LoginPage(h.lang(r), req.Username, err.Error(), p))
	case errors.Is(err, service.ErrInvalidCredentials):
		ui.RenderStatus(w, r, http.StatusUnauthorized,
			ui.LoginPage(h.lang(r), req.Username, p.Sprintf("login.failed"), p))
	default:
		ui.RenderStatus(w, r, http.StatusBadGateway,
			ui.LoginPage(h.lang(r), req.Username, p.Sprintf("error.load"), p))
	}
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
