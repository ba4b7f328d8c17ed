package wishlist_test

import (
	"testing"

	"fashionfuel/internal/domain"
	"fashionfuel/internal/storage"
	"fashionfuel/internal/wishlist"
)

func TestToggleAddsThenRemoves(t *testing.T) {
	s := wishlist.Load(storage.NewMemory(), "sid")
	p := domain.Product{ID: "1", Title: "Linen Summer Dress"}

	if saved := s.Toggle(p); !saved {
		t.Fatal("first toggle should save")
	}
	if !s.Contains("1") {
		t.Fatal("product should be saved")
	}

	if saved := s.Toggle(p); saved {
		t.Fatal("second toggle should remove")
	}
	if s.Contains("1") {
		t.Fatal("product should be gone")
	}
}

func TestToggleNeverDuplicates(t *testing.T) {
	s := wishlist.Load(storage.NewMemory(), "sid")
	p := domain.Product{ID: "1"}
	s.Toggle(p)
	s.Toggle(p)
	s.Toggle(p)
	if got := len(s.Items()); got != 1 {
		t.Fatalf("want 1 item after odd toggles, got %d", got)
	}
}

func TestPersistsAcrossLoads(t *testing.T) {
	store := storage.NewMemory()
	s := wishlist.Load(store, "sid")
	s.Toggle(domain.Product{ID: "1"})
	s.Toggle(domain.Product{ID: "2"})
	s.Toggle(domain.Product{ID: "1"})

	reloaded := wishlist.Load(store, "sid")
	items := reloaded.Items()
	if len(items) != 1 || items[0].ID != "2" {
		t.Fatalf("reloaded wishlist mismatch: %+v", items)
	}

	other := wishlist.Load(store, "other")
	if len(other.Items()) != 0 {
		t.Fatal("sessions must not share wishlists")
	}
}

func TestCorruptSnapshotLoadsEmpty(t *testing.T) {
	store := storage.NewMemory()
	if err := store.Save(storage.Key("wishlist", "sid"), []byte("{{")); err != nil {
		t.Fatal(err)
	}
	s := wishlist.Load(store, "sid")
	if len(s.Items()) != 0 {
		t.Fatalf("corrupt snapshot should load as empty, got %+v", s.Items())
	}
	s.Toggle(domain.Product{ID: "1"})
	if !s.Contains("1") {
		t.Fatal("wishlist should stay usable after a bad load")
	}
}
