package prefs_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"fashionfuel/internal/domain"
	"fashionfuel/internal/prefs"
	"fashionfuel/internal/storage"
)

func TestRecentlyViewedCapsAtTenMostRecentFirst(t *testing.T) {
	tr := prefs.Load(storage.NewMemory(), "sid")
	for i := 1; i <= 11; i++ {
		tr.TrackProductView(fmt.Sprintf("%d", i), "women")
	}

	got := tr.RecentlyViewed()
	if len(got) != 10 {
		t.Fatalf("want 10 ids, got %d", len(got))
	}
	// 11 down to 2, most recent first; id 1 fell off.
	for i, id := range got {
		want := fmt.Sprintf("%d", 11-i)
		if id != want {
			t.Fatalf("position %d: want %s, got %s", i, want, id)
		}
	}
}

func TestRepeatViewMovesToFrontWithoutDuplicates(t *testing.T) {
	tr := prefs.Load(storage.NewMemory(), "sid")
	tr.TrackProductView("1", "")
	tr.TrackProductView("2", "")
	tr.TrackProductView("3", "")
	tr.TrackProductView("1", "")

	got := tr.RecentlyViewed()
	if len(got) != 3 {
		t.Fatalf("want 3 distinct ids, got %v", got)
	}
	if got[0] != "1" || got[1] != "3" || got[2] != "2" {
		t.Fatalf("want [1 3 2], got %v", got)
	}
}

func TestCategoryWeights(t *testing.T) {
	tr := prefs.Load(storage.NewMemory(), "sid")
	tr.TrackProductView("1", "women")
	if w := tr.FavoriteCategories()["women"]; w != 1 {
		t.Fatalf("view should weigh 1, got %d", w)
	}
	tr.TrackAddToCart("1", "women")
	if w := tr.FavoriteCategories()["women"]; w != 4 {
		t.Fatalf("cart should add 3 on top of the view, got %d", w)
	}
	// Missing category is ignored.
	tr.TrackAddToCart("2", "")
	if len(tr.FavoriteCategories()) != 1 {
		t.Fatalf("empty category must not create a weight entry: %v", tr.FavoriteCategories())
	}
}

func TestAddToCartDoesNotTouchRecentlyViewed(t *testing.T) {
	tr := prefs.Load(storage.NewMemory(), "sid")
	tr.TrackProductView("1", "men")
	tr.TrackAddToCart("2", "men")
	got := tr.RecentlyViewed()
	if len(got) != 1 || got[0] != "1" {
		t.Fatalf("cart events must not enter recently viewed, got %v", got)
	}
}

func TestTopCategoryPrefersHeaviest(t *testing.T) {
	tr := prefs.Load(storage.NewMemory(), "sid")
	tr.TrackProductView("1", "women")
	tr.TrackProductView("2", "women")
	tr.TrackAddToCart("3", "accessories")
	if top := tr.TopCategory(); top != "accessories" {
		t.Fatalf("want accessories (weight 3 beats 2), got %s", top)
	}
}

func TestRecommendedExcludesRecentlyViewed(t *testing.T) {
	tr := prefs.Load(storage.NewMemory(), "sid")
	tr.TrackProductView("1", "women")

	items := []domain.Product{
		{ID: "1", Category: "women"},
		{ID: "2", Category: "women"},
		{ID: "3", Category: "men"},
	}
	got := tr.RecommendedFrom(items, 0)
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("want only the unseen women item, got %+v", got)
	}
}

func TestHistoryClippedToFiftyOnWrite(t *testing.T) {
	store := storage.NewMemory()
	tr := prefs.Load(store, "sid")
	for i := 0; i < 60; i++ {
		tr.TrackProductView(fmt.Sprintf("%d", i), "women")
	}

	raw, err := store.Load(storage.Key("interactionHistory", "sid"))
	if err != nil {
		t.Fatal(err)
	}
	var persisted []domain.Interaction
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatal(err)
	}
	if len(persisted) != 50 {
		t.Fatalf("persisted history should clip to 50, got %d", len(persisted))
	}
	if persisted[len(persisted)-1].ProductID != "59" {
		t.Fatalf("clip should keep the most recent entries, last=%+v", persisted[len(persisted)-1])
	}
	if persisted[0].Type != "view" {
		t.Fatalf("unexpected record: %+v", persisted[0])
	}
}

func TestPersistsAcrossLoads(t *testing.T) {
	store := storage.NewMemory()
	tr := prefs.Load(store, "sid")
	tr.TrackProductView("1", "women")
	tr.TrackAddToCart("1", "women")

	reloaded := prefs.Load(store, "sid")
	if got := reloaded.RecentlyViewed(); len(got) != 1 || got[0] != "1" {
		t.Fatalf("recently viewed did not survive reload: %v", got)
	}
	if w := reloaded.FavoriteCategories()["women"]; w != 4 {
		t.Fatalf("weights did not survive reload: %d", w)
	}
	if n := len(reloaded.History()); n != 2 {
		t.Fatalf("history did not survive reload: %d", n)
	}
}
