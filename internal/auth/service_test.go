package auth_test

import (
	"errors"
	"testing"

	"fashionfuel/internal/auth"
	"fashionfuel/internal/storage"
)

func newTestService(store storage.Store) *auth.Service {
	return auth.NewService(store, []auth.Credential{
		{Email: "admin@fashionfuel.com", Password: "password123", Role: "admin"},
		{Email: "user@fashionfuel.com", Password: "fashion123", Role: "user"},
	})
}

func TestLoginGoodCredentials(t *testing.T) {
	svc := newTestService(storage.NewMemory())
	sess, err := svc.Login("sid", "admin@fashionfuel.com", "password123")
	if err != nil {
		t.Fatal(err)
	}
	if !sess.IsAuthenticated || sess.Role != "admin" {
		t.Fatalf("bad session: %+v", sess)
	}
	if sess.User == nil || sess.User.Email != "admin@fashionfuel.com" {
		t.Fatalf("bad user: %+v", sess.User)
	}
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	svc := newTestService(storage.NewMemory())
	sess, err := svc.Login("sid", "Admin@FashionFuel.com", "password123")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Role != "admin" {
		t.Fatalf("want admin role, got %s", sess.Role)
	}
}

func TestLoginBadPassword(t *testing.T) {
	svc := newTestService(storage.NewMemory())
	if _, err := svc.Login("sid", "admin@fashionfuel.com", "wrong"); !errors.Is(err, auth.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
	if _, err := svc.Login("sid", "nobody@example.com", "password123"); !errors.Is(err, auth.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds for unknown email, got %v", err)
	}
}

func TestCurrentSurvivesReload(t *testing.T) {
	store := storage.NewMemory()
	svc := newTestService(store)
	if _, err := svc.Login("sid", "user@fashionfuel.com", "fashion123"); err != nil {
		t.Fatal(err)
	}

	// A fresh service over the same store sees the session snapshot.
	again := newTestService(store)
	sess := again.Current("sid")
	if !sess.IsAuthenticated || sess.Role != "user" {
		t.Fatalf("session did not survive: %+v", sess)
	}
}

func TestCurrentWithoutLoginIsEmpty(t *testing.T) {
	svc := newTestService(storage.NewMemory())
	sess := svc.Current("sid")
	if sess.IsAuthenticated || sess.User != nil {
		t.Fatalf("want empty session, got %+v", sess)
	}
	if sess := svc.Current(""); sess.IsAuthenticated {
		t.Fatal("blank sid must never authenticate")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newTestService(storage.NewMemory())
	if _, err := svc.Login("sid", "user@fashionfuel.com", "fashion123"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Logout("sid"); err != nil {
		t.Fatal(err)
	}
	if svc.Current("sid").IsAuthenticated {
		t.Fatal("session should be gone after logout")
	}
}
