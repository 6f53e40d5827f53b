// Package session holds the single authoritative auth state: the admin
// identity and the backend token pair. The HTTP client and the route guard
// read it synchronously; login, logout and token refresh are the only
// writers.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ilmnur/admin-dashboard/internal/crypto"
	"github.com/ilmnur/admin-dashboard/internal/model"
)

// State is one snapshot of the session. A zero State is logged out.
type State struct {
	User         *model.User
	AccessToken  string
	RefreshToken string
}

// IsAuthenticated is true iff an access token is present.
func (s State) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// Persister mirrors session mutations to durable storage so a process
// restart restores the session without re-login.
type Persister interface {
	SaveSession(State) error
	LoadSession() (State, bool, error)
	ClearSession() error
}

// Store is the process-wide session holder. Exactly one instance exists.
type Store struct {
	mu        sync.RWMutex
	state     State
	persister Persister
}

// New creates a store and restores any persisted session.
func New(p Persister) (*Store, error) {
	s := &Store{persister: p}
	state, ok, err := p.LoadSession()
	if err != nil {
		return nil, err
	}
	if ok {
		s.state = state
		slog.Info("session restored", "user", state.userName())
	}
	return s, nil
}

func (s State) userName() string {
	if s.User == nil {
		return ""
	}
	return s.User.Username
}

// SetCredentials stores the identity and token pair and persists them.
func (s *Store) SetCredentials(user model.User, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{User: &user, AccessToken: accessToken, RefreshToken: refreshToken}
	return s.persister.SaveSession(s.state)
}

// UpdateAccessToken replaces only the access token, after a refresh.
func (s *Store) UpdateAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsAuthenticated() {
		return
	}
	s.state.AccessToken = token
	if err := s.persister.SaveSession(s.state); err != nil {
		slog.Error("persist refreshed access token", "error", err)
	}
}

// Logout clears all fields in memory and removes the persisted copy.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
	if err := s.persister.ClearSession(); err != nil {
		slog.Error("clear persisted session", "error", err)
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated reports whether a session is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated()
}

// AccessToken returns the current access token, "" when logged out.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AccessToken
}

// RefreshToken returns the current refresh token, "" when logged out.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.RefreshToken
}

// User returns the current identity, nil when logged out.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User
}

// ExpiresAt reports the access token's expiry claim when one is present.
func (s *Store) ExpiresAt() (time.Time, bool) {
	token := s.AccessToken()
	if token == "" {
		return time.Time{}, false
	}
	exp, err := crypto.TokenExpiry(token)
	if err != nil {
		return time.Time{}, false
	}
	return exp, true
}
