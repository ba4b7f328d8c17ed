package catalog

import (
	"encoding/json"
	"sync"

	"fashionfuel/internal/domain"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/storage"
)

// Browse holds one session's category and search state. The two are
// deliberately coupled: changing category clears any active query, and a
// query ranks within the current category subset only. Decoupling them
// would be an observable behavior change.
type Browse struct {
	mu    sync.Mutex
	store storage.Store
	key   string
	state browseState
}

type browseState struct {
	Category string `json:"category"`
	Query    string `json:"query"`
}

func LoadBrowse(store storage.Store, sid string) *Browse {
	b := &Browse{store: store, key: storage.Key("browse", sid)}
	raw, err := store.Load(b.key)
	if err != nil {
		return b
	}
	var state browseState
	if err := json.Unmarshal(raw, &state); err != nil {
		applog.NonFatal(nil, "browse.snapshot.corrupt", err, map[string]any{"key": b.key})
		return b
	}
	b.state = state
	return b
}

// FilterByCategory sets the current category and clears any active query.
func (b *Browse) FilterByCategory(category string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Category = category
	b.state.Query = ""
	b.persist()
}

// SetSearchQuery records the query; an empty query reverts the view to the
// category subset. Search never persists independently of category.
func (b *Browse) SetSearchQuery(query string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Query = query
	b.persist()
}

func (b *Browse) Category() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state.Category == "" {
		return AllCategories
	}
	return b.state.Category
}

func (b *Browse) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Query
}

// Apply derives this session's view of the catalog: the category subset,
// ranked by the active query. Pure with respect to items; no shared state.
func (b *Browse) Apply(items []domain.Product) []domain.Product {
	b.mu.Lock()
	category, query := b.state.Category, b.state.Query
	b.mu.Unlock()
	return Rank(ByCategory(items, category), query)
}

// persist runs under the lock; write failures are non-fatal by policy.
func (b *Browse) persist() {
	raw, err := json.Marshal(b.state)
	if err == nil {
		err = b.store.Save(b.key, raw)
	}
	if err != nil {
		applog.NonFatal(nil, "browse.snapshot.save", err, map[string]any{"key": b.key})
	}
}
