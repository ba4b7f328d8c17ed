package storage

import (
	"errors"
	"testing"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return db
}

func TestSaveThenLoad(t *testing.T) {
	db := openTestDB(t)
	if err := db.Save("cart:sid", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatal(err)
	}
	got, err := db.Load("cart:sid")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	db := openTestDB(t)
	if err := db.Save("k", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := db.Save("k", []byte("b")); err != nil {
		t.Fatal(err)
	}
	got, err := db.Load("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "b" {
		t.Fatalf("second save should win, got %s", got)
	}
}

func TestLoadMissingIsNotFound(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	if err := db.Save("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := db.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Load("k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
	// Deleting again is fine.
	if err := db.Delete("k"); err != nil {
		t.Fatal(err)
	}
}

func TestKeyNamespacesBySession(t *testing.T) {
	if k := Key("cart", "abc"); k != "cart:abc" {
		t.Fatalf("unexpected key layout: %s", k)
	}
}
