package wishlist

import (
	"encoding/json"
	"sync"

	"fashionfuel/internal/domain"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/storage"
)

// Slice holds one session's saved products, deduplicated by id, with
// toggle semantics: present becomes absent and absent becomes present.
type Slice struct {
	mu    sync.Mutex
	store storage.Store
	key   string
	items []domain.Product
}

func Load(store storage.Store, sid string) *Slice {
	s := &Slice{store: store, key: storage.Key("wishlist", sid)}
	raw, err := store.Load(s.key)
	if err != nil {
		return s
	}
	var items []domain.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		applog.NonFatal(nil, "wishlist.snapshot.corrupt", err, map[string]any{"key": s.key})
		return s
	}
	s.items = items
	return s
}

// Toggle adds the product when absent and removes it when present.
// Reports true when the product ends up saved.
func (s *Slice) Toggle(p domain.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return false
		}
	}
	s.items = append(s.items, p)
	s.persist()
	return true
}

func (s *Slice) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *Slice) Items() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Slice) persist() {
	items := s.items
	if items == nil {
		items = []domain.Product{}
	}
	b, err := json.Marshal(items)
	if err == nil {
		err = s.store.Save(s.key, b)
	}
	if err != nil {
		applog.NonFatal(nil, "wishlist.snapshot.save", err, map[string]any{"key": s.key})
	}
}
