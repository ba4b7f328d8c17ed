package prefs

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"fashionfuel/internal/domain"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/storage"
)

const (
	maxRecentlyViewed = 10
	maxHistory        = 50

	viewWeight = 1
	// A cart action is a much stronger preference signal than a page view.
	cartWeight = 3
)

// Tracker records view and add-to-cart events per session to bias the
// "recommended for you" selection. Each field persists under its own
// snapshot key; unreadable snapshots load as empty defaults.
type Tracker struct {
	mu    sync.Mutex
	store storage.Store

	recentKey  string
	weightKey  string
	historyKey string

	recentlyViewed []string
	favoriteCats   map[string]int
	history        []domain.Interaction

	now func() time.Time
}

func Load(store storage.Store, sid string) *Tracker {
	t := &Tracker{
		store:        store,
		recentKey:    storage.Key("recentlyViewed", sid),
		weightKey:    storage.Key("favoriteCategories", sid),
		historyKey:   storage.Key("interactionHistory", sid),
		favoriteCats: map[string]int{},
		now:          time.Now,
	}
	loadJSON(store, t.recentKey, &t.recentlyViewed)
	loadJSON(store, t.weightKey, &t.favoriteCats)
	loadJSON(store, t.historyKey, &t.history)
	if t.favoriteCats == nil {
		t.favoriteCats = map[string]int{}
	}
	return t
}

// TrackProductView moves id to the front of the recently-viewed list
// (removing any prior occurrence), truncates to the ten most recent,
// bumps the category weight, and appends a view record to history.
func (t *Tracker) TrackProductView(id, category string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	recent := make([]string, 0, len(t.recentlyViewed)+1)
	recent = append(recent, id)
	for _, prev := range t.recentlyViewed {
		if prev != id {
			recent = append(recent, prev)
		}
	}
	if len(recent) > maxRecentlyViewed {
		recent = recent[:maxRecentlyViewed]
	}
	t.recentlyViewed = recent

	if category != "" {
		t.favoriteCats[category] += viewWeight
	}
	t.history = append(t.history, domain.Interaction{
		Type:      "view",
		ProductID: id,
		Timestamp: t.now().UnixMilli(),
	})
	t.persist()
}

// TrackAddToCart appends a cart record and bumps the category weight at
// three times the weight of a view. Recently-viewed is untouched.
func (t *Tracker) TrackAddToCart(id, category string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.history = append(t.history, domain.Interaction{
		Type:      "cart",
		ProductID: id,
		Timestamp: t.now().UnixMilli(),
	})
	if category != "" {
		t.favoriteCats[category] += cartWeight
	}
	t.persist()
}

func (t *Tracker) RecentlyViewed() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.recentlyViewed))
	copy(out, t.recentlyViewed)
	return out
}

func (t *Tracker) FavoriteCategories() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]int, len(t.favoriteCats))
	for k, v := range t.favoriteCats {
		out[k] = v
	}
	return out
}

// TopCategory returns the highest-weighted category, or "" when nothing
// has been tracked. Ties break alphabetically for stable output.
func (t *Tracker) TopCategory() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	cats := make([]string, 0, len(t.favoriteCats))
	for c := range t.favoriteCats {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if t.favoriteCats[cats[i]] != t.favoriteCats[cats[j]] {
			return t.favoriteCats[cats[i]] > t.favoriteCats[cats[j]]
		}
		return cats[i] < cats[j]
	})
	if len(cats) == 0 {
		return ""
	}
	return cats[0]
}

func (t *Tracker) History() []domain.Interaction {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Interaction, len(t.history))
	copy(out, t.history)
	return out
}

// RecommendedFrom picks catalog items in the top-weighted category,
// excluding anything already recently viewed.
func (t *Tracker) RecommendedFrom(items []domain.Product, limit int) []domain.Product {
	top := t.TopCategory()
	if top == "" {
		return nil
	}
	t.mu.Lock()
	seen := make(map[string]bool, len(t.recentlyViewed))
	for _, id := range t.recentlyViewed {
		seen[id] = true
	}
	t.mu.Unlock()

	out := []domain.Product{}
	for _, p := range items {
		if p.Category != top || seen[p.ID] {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// persist writes all three snapshots; history is clipped to the last 50
// entries on write, not on append. Callers hold the lock.
func (t *Tracker) persist() {
	saveJSON(t.store, t.recentKey, t.recentlyViewed)
	saveJSON(t.store, t.weightKey, t.favoriteCats)
	history := t.history
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	saveJSON(t.store, t.historyKey, history)
}

func loadJSON(store storage.Store, key string, dst any) {
	raw, err := store.Load(key)
	if err != nil {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		applog.NonFatal(nil, "prefs.snapshot.corrupt", err, map[string]any{"key": key})
	}
}

func saveJSON(store storage.Store, key string, v any) {
	b, err := json.Marshal(v)
	if err == nil {
		err = store.Save(key, b)
	}
	if err != nil {
		applog.NonFatal(nil, "prefs.snapshot.save", err, map[string]any{"key": key})
	}
}
