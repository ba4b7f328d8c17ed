package catalog_test

import (
	"context"
	"sync"
	"testing"

	"fashionfuel/internal/catalog"
	"fashionfuel/internal/storage"
)

func TestFilterByCategory(t *testing.T) {
	s := catalog.New(fakeShopAPI(t))
	if err := s.FetchProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	b := catalog.LoadBrowse(storage.NewMemory(), "sid")

	b.FilterByCategory("women")
	got := b.Apply(s.Items())
	if len(got) != 1 || got[0].Category != "women" {
		t.Fatalf("want 1 women item, got %+v", got)
	}

	b.FilterByCategory("all")
	if all := b.Apply(s.Items()); len(all) != 3 {
		t.Fatalf("'all' should restore the full list, got %d", len(all))
	}
}

func TestSearchRanksWithinCategorySubset(t *testing.T) {
	s := catalog.New(fakeShopAPI(t))
	if err := s.FetchProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	b := catalog.LoadBrowse(storage.NewMemory(), "sid")

	b.FilterByCategory("men")
	b.SetSearchQuery("denim")
	got := b.Apply(s.Items())
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("search in men should match the jacket only, got %+v", got)
	}

	// A match outside the current category stays invisible.
	b.SetSearchQuery("tote")
	if none := b.Apply(s.Items()); len(none) != 0 {
		t.Fatalf("search must not escape the category subset, got %+v", none)
	}
}

func TestEmptyQueryRevertsToCategorySubset(t *testing.T) {
	s := catalog.New(fakeShopAPI(t))
	if err := s.FetchProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	b := catalog.LoadBrowse(storage.NewMemory(), "sid")

	b.FilterByCategory("women")
	b.SetSearchQuery("dress")
	b.SetSearchQuery("")
	got := b.Apply(s.Items())
	if len(got) != 1 || got[0].Category != "women" {
		t.Fatalf("empty query should revert to the category subset, got %+v", got)
	}
}

func TestChangingCategoryClearsSearch(t *testing.T) {
	s := catalog.New(fakeShopAPI(t))
	if err := s.FetchProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	b := catalog.LoadBrowse(storage.NewMemory(), "sid")

	b.SetSearchQuery("dress")
	if b.Query() == "" {
		t.Fatal("query should be active")
	}
	b.FilterByCategory("accessories")
	if b.Query() != "" {
		t.Fatal("changing category must clear the search query")
	}
	got := b.Apply(s.Items())
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("want the accessories subset, got %+v", got)
	}
}

func TestBrowseStatePersistsAcrossLoads(t *testing.T) {
	store := storage.NewMemory()
	b := catalog.LoadBrowse(store, "sid")
	b.FilterByCategory("women")
	b.SetSearchQuery("dress")

	reloaded := catalog.LoadBrowse(store, "sid")
	if reloaded.Category() != "women" || reloaded.Query() != "dress" {
		t.Fatalf("browse state lost: category=%q query=%q", reloaded.Category(), reloaded.Query())
	}

	other := catalog.LoadBrowse(store, "other")
	if other.Category() != catalog.AllCategories || other.Query() != "" {
		t.Fatal("sessions must not share browse state")
	}
}

func TestRefetchLeavesBrowseStateAlone(t *testing.T) {
	s := catalog.New(fakeShopAPI(t))
	b := catalog.LoadBrowse(storage.NewMemory(), "sid")
	b.FilterByCategory("women")

	if err := s.FetchProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.FetchProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	if b.Category() != "women" {
		t.Fatalf("refetch must not reset the category, got %q", b.Category())
	}
	if got := b.Apply(s.Items()); len(got) != 1 || got[0].Category != "women" {
		t.Fatalf("view should still be the women subset, got %+v", got)
	}
}

// Two sessions hammering filter and search concurrently must never leak
// results across each other's category.
func TestConcurrentSessionsDoNotShareFilterState(t *testing.T) {
	s := catalog.New(fakeShopAPI(t))
	if err := s.FetchProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	store := storage.NewMemory()

	const rounds = 500
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		other := catalog.LoadBrowse(store, "other")
		for i := 0; i < rounds; i++ {
			other.FilterByCategory("women")
			other.SetSearchQuery("dress")
		}
	}()

	b := catalog.LoadBrowse(store, "sid")
	for i := 0; i < rounds; i++ {
		b.FilterByCategory("men")
		b.SetSearchQuery("e")
		for _, p := range b.Apply(s.Items()) {
			if p.Category != "men" {
				t.Fatalf("round %d: search escaped the requested category: %+v", i, p)
			}
		}
	}
	wg.Wait()
}
