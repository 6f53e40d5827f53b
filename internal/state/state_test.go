package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ilmnur/admin-dashboard/internal/model"
	"github.com/ilmnur/admin-dashboard/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "state.db"), "test-secret")
	if err != nil {
		t.Fatalf("open state store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSessionPersistence_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	st := session.State{
		User:         &model.User{ID: "u1", Username: "admin", FullName: "Admin"},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}
	if err := s.SaveSession(st); err != nil {
		t.Fatalf("save session: %v", err)
	}

	got, ok, err := s.LoadSession()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if !ok {
		t.Fatal("expected a persisted session")
	}
	if got.AccessToken != "access-token" || got.RefreshToken != "refresh-token" {
		t.Error("token pair did not round-trip")
	}
	if got.User == nil || got.User.Username != "admin" {
		t.Error("user identity did not round-trip")
	}
}

func TestSessionPersistence_SaveOverwrites(t *testing.T) {
	s := openTestStore(t)

	_ = s.SaveSession(session.State{AccessToken: "first", RefreshToken: "r1"})
	if err := s.SaveSession(session.State{AccessToken: "second", RefreshToken: "r2"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, ok, err := s.LoadSession()
	if err != nil || !ok {
		t.Fatalf("load session: ok=%v err=%v", ok, err)
	}
	if got.AccessToken != "second" {
		t.Errorf("expected the latest session, got access token %q", got.AccessToken)
	}
}

func TestClearSession(t *testing.T) {
	s := openTestStore(t)

	_ = s.SaveSession(session.State{AccessToken: "access", RefreshToken: "refresh"})
	if err := s.ClearSession(); err != nil {
		t.Fatalf("clear session: %v", err)
	}

	_, ok, err := s.LoadSession()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if ok {
		t.Error("session should be gone after clear")
	}
}

func TestLoadSession_EmptyStore(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.LoadSession()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if ok {
		t.Error("fresh store should hold no session")
	}
}

func TestActivityLog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, a := range []Activity{
		{Actor: "admin", Action: "login", Resource: "session"},
		{Actor: "admin", Action: "create", Resource: "category", RecordID: "c1"},
		{Actor: "admin", Action: "delete", Resource: "duas", RecordID: "d9"},
	} {
		if err := s.RecordActivity(ctx, a); err != nil {
			t.Fatalf("record activity: %v", err)
		}
	}

	got, err := s.RecentActivity(ctx, 2)
	if err != nil {
		t.Fatalf("recent activity: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Action != "delete" {
		t.Errorf("expected newest entry first, got action %q", got[0].Action)
	}
}

func TestPruneActivity(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	for _, a := range []Activity{
		{Actor: "admin", Action: "login", Resource: "session", CreatedAt: now.Add(-100 * 24 * time.Hour)},
		{Actor: "admin", Action: "create", Resource: "category", CreatedAt: now.Add(-40 * 24 * time.Hour)},
		{Actor: "admin", Action: "update", Resource: "news", CreatedAt: now},
	} {
		if err := s.RecordActivity(ctx, a); err != nil {
			t.Fatalf("record activity: %v", err)
		}
	}

	removed, err := s.PruneActivity(ctx, now.Add(-90*24*time.Hour))
	if err != nil {
		t.Fatalf("prune activity: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 pruned entry, got %d", removed)
	}

	got, err := s.RecentActivity(ctx, 10)
	if err != nil {
		t.Fatalf("recent activity: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 remaining entries, got %d", len(got))
	}
	for _, e := range got {
		if e.Action == "login" {
			t.Error("pruned entry still present")
		}
	}
}
