package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ilmnur/admin-dashboard/internal/backend"
	"github.com/ilmnur/admin-dashboard/internal/model"
	"github.com/ilmnur/admin-dashboard/internal/session"
	"github.com/ilmnur/admin-dashboard/internal/state"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// AuthService signs the operator in and out against the backend and keeps
// the local session in sync.
type AuthService struct {
	client   *backend.Client
	sessions *session.Store
	store    *state.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(client *backend.Client, sessions *session.Store, store *state.Store) *AuthService {
	return &AuthService{
		client:   client,
		sessions: sessions,
		store:    store,
	}
}

// Login authenticates against the backend and stores the returned tokens.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return ErrUsernameRequired
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}

	res, err := s.client.Login(ctx, req)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := s.sessions.SetCredentials(res.User, res.AccessToken, res.RefreshToken); err != nil {
		return err
	}
	if exp, ok := s.sessions.ExpiresAt(); ok {
		slog.Info("session established", "user", res.User.Username, "token_expires", exp)
	}

	s.record(ctx, res.User.FullName, "login", "")
	return nil
}

// Logout drops the session. The backend has no logout endpoint; discarding
// the tokens is sufficient.
func (s *AuthService) Logout(ctx context.Context) {
	actor := ""
	if u := s.sessions.User(); u != nil {
		actor = u.FullName
	}
	s.sessions.Logout()
	s.record(ctx, actor, "logout", "")
}

func (s *AuthService) record(ctx context.Context, actor, action, resource string) {
	if s.store == nil {
		return
	}
	err := s.store.RecordActivity(ctx, state.Activity{
		Actor:    actor,
		Action:   action,
		Resource: resource,
	})
	if err != nil {
		slog.Warn("activity log write failed", "action", action, "error", err)
	}
}
