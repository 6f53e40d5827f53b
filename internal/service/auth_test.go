package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ilmnur/admin-dashboard/internal/backend"
	"github.com/ilmnur/admin-dashboard/internal/model"
	"github.com/ilmnur/admin-dashboard/internal/session"
)

type memoryPersister struct {
	state  session.State
	loaded bool
}

func (m *memoryPersister) SaveSession(st session.State) error {
	m.state = st
	m.loaded = true
	return nil
}

func (m *memoryPersister) LoadSession() (session.State, bool, error) {
	return m.state, m.loaded, nil
}

func (m *memoryPersister) ClearSession() error {
	m.state = session.State{}
	m.loaded = false
	return nil
}

func newTestSessions(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.New(&memoryPersister{})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return store
}

func loginBackend(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_Success(t *testing.T) {
	srv := loginBackend(t, http.StatusOK, map[string]any{
		"status_code": 200,
		"message":     "OK",
		"data": map[string]any{
			"full_name":     "Admin User",
			"username":      "admin",
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
		},
	})

	sessions := newTestSessions(t)
	svc := NewAuthService(backend.NewClient(srv.URL, sessions), sessions, nil)

	err := svc.Login(context.Background(), model.LoginRequest{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if !sessions.IsAuthenticated() {
		t.Error("session not authenticated after login")
	}
	if got := sessions.AccessToken(); got != "access-1" {
		t.Errorf("access token = %q, want %q", got, "access-1")
	}
	if got := sessions.RefreshToken(); got != "refresh-1" {
		t.Errorf("refresh token = %q, want %q", got, "refresh-1")
	}
	if u := sessions.User(); u == nil || u.Username != "admin" {
		t.Errorf("user = %+v, want username admin", u)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := loginBackend(t, http.StatusUnauthorized, map[string]any{
		"status_code": 401,
		"message":     "bad credentials",
	})

	sessions := newTestSessions(t)
	svc := NewAuthService(backend.NewClient(srv.URL, sessions), sessions, nil)

	err := svc.Login(context.Background(), model.LoginRequest{Username: "admin", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
	if sessions.IsAuthenticated() {
		t.Error("session authenticated after failed login")
	}
}

func TestLogin_Validation(t *testing.T) {
	sessions := newTestSessions(t)
	svc := NewAuthService(backend.NewClient("http://unused", sessions), sessions, nil)

	tests := []struct {
		name string
		req  model.LoginRequest
		want error
	}{
		{"missing username", model.LoginRequest{Password: "x"}, ErrUsernameRequired},
		{"blank username", model.LoginRequest{Username: "   ", Password: "x"}, ErrUsernameRequired},
		{"missing password", model.LoginRequest{Username: "admin"}, ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Login(context.Background(), tt.req); !errors.Is(err, tt.want) {
				t.Errorf("Login error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLogin_BackendDown(t *testing.T) {
	srv := loginBackend(t, http.StatusInternalServerError, map[string]any{
		"status_code": 500,
		"message":     "boom",
	})

	sessions := newTestSessions(t)
	svc := NewAuthService(backend.NewClient(srv.URL, sessions), sessions, nil)

	err := svc.Login(context.Background(), model.LoginRequest{Username: "admin", Password: "secret"})
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want backend error passthrough", err)
	}
}

func TestLogout(t *testing.T) {
	srv := loginBackend(t, http.StatusOK, map[string]any{
		"status_code": 200,
		"message":     "OK",
		"data": map[string]any{
			"username":      "admin",
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
		},
	})

	sessions := newTestSessions(t)
	svc := NewAuthService(backend.NewClient(srv.URL, sessions), sessions, nil)

	if err := svc.Login(context.Background(), model.LoginRequest{Username: "admin", Password: "secret"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	svc.Logout(context.Background())

	if sessions.IsAuthenticated() {
		t.Error("session still authenticated after logout")
	}
}
