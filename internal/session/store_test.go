package session

import (
	"testing"

	"github.com/ilmnur/admin-dashboard/internal/model"
)

// memoryPersister records session mutations in memory for tests.
type memoryPersister struct {
	state   State
	present bool
	saves   int
	clears  int
}

func (m *memoryPersister) SaveSession(s State) error {
	m.state = s
	m.present = true
	m.saves++
	return nil
}

func (m *memoryPersister) LoadSession() (State, bool, error) {
	return m.state, m.present, nil
}

func (m *memoryPersister) ClearSession() error {
	m.state = State{}
	m.present = false
	m.clears++
	return nil
}

func admin() model.User {
	return model.User{ID: "u1", FullName: "Admin", Username: "admin", Role: "admin"}
}

func TestSetCredentials_PersistsAndAuthenticates(t *testing.T) {
	p := &memoryPersister{}
	s, err := New(p)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if s.IsAuthenticated() {
		t.Fatal("fresh store should not be authenticated")
	}

	if err := s.SetCredentials(admin(), "access", "refresh"); err != nil {
		t.Fatalf("set credentials: %v", err)
	}

	if !s.IsAuthenticated() {
		t.Error("store should be authenticated after SetCredentials")
	}
	if s.AccessToken() != "access" || s.RefreshToken() != "refresh" {
		t.Error("token pair not stored")
	}
	if !p.present {
		t.Error("session should be persisted")
	}
	if p.state.User == nil || p.state.User.Username != "admin" {
		t.Error("persisted state should carry the user identity")
	}
}

func TestUpdateAccessToken_OnlyMutatesAccessToken(t *testing.T) {
	p := &memoryPersister{}
	s, _ := New(p)
	_ = s.SetCredentials(admin(), "old-access", "refresh")

	s.UpdateAccessToken("new-access")

	if s.AccessToken() != "new-access" {
		t.Error("access token should be replaced")
	}
	if s.RefreshToken() != "refresh" {
		t.Error("refresh token must be untouched")
	}
	if p.state.AccessToken != "new-access" {
		t.Error("refreshed token should be persisted")
	}
}

func TestUpdateAccessToken_NoopWhenLoggedOut(t *testing.T) {
	p := &memoryPersister{}
	s, _ := New(p)

	s.UpdateAccessToken("stray")

	if s.IsAuthenticated() {
		t.Error("updating a logged-out store must not authenticate it")
	}
	if p.saves != 0 {
		t.Error("nothing should be persisted for a logged-out store")
	}
}

func TestLogout_ClearsEverything(t *testing.T) {
	p := &memoryPersister{}
	s, _ := New(p)
	_ = s.SetCredentials(admin(), "access", "refresh")

	s.Logout()

	if s.IsAuthenticated() {
		t.Error("store should not be authenticated after logout")
	}
	if s.AccessToken() != "" || s.RefreshToken() != "" || s.User() != nil {
		t.Error("all session fields must be cleared")
	}
	if p.present {
		t.Error("persisted copy must be removed")
	}
	if p.clears != 1 {
		t.Errorf("expected exactly one clear, got %d", p.clears)
	}
}

func TestNew_RestoresPersistedSession(t *testing.T) {
	p := &memoryPersister{}
	first, _ := New(p)
	_ = first.SetCredentials(admin(), "access", "refresh")

	second, err := New(p)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if !second.IsAuthenticated() {
		t.Error("restored store should be authenticated")
	}
	if second.User() == nil || second.User().ID != "u1" {
		t.Error("restored store should carry the persisted identity")
	}
}
