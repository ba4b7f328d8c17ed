package cart

import (
	"encoding/json"
	"sync"

	"fashionfuel/internal/domain"
	applog "fashionfuel/internal/log"
	"fashionfuel/internal/storage"
)

// TaxRate is the flat tax applied on top of the cart subtotal.
const TaxRate = 0.10

// Slice holds one session's cart lines. Every mutation serializes the full
// line list back to the snapshot store; an unreadable snapshot loads as an
// empty cart and is never surfaced to the user.
type Slice struct {
	mu    sync.Mutex
	store storage.Store
	key   string
	lines []domain.CartLine
}

func Load(store storage.Store, sid string) *Slice {
	s := &Slice{store: store, key: storage.Key("cart", sid)}
	raw, err := store.Load(s.key)
	if err != nil {
		return s
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		applog.NonFatal(nil, "cart.snapshot.corrupt", err, map[string]any{"key": s.key})
		return s
	}
	s.lines = lines
	return s
}

// Add increments the quantity of an existing line or appends a new line
// with quantity 1.
func (s *Slice) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity++
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{Product: p, Quantity: 1})
	s.persist()
}

// Remove deletes the line matching id; silently a no-op when absent.
func (s *Slice) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	s.persist()
}

// UpdateQuantity sets the quantity only when q > 0 and the line exists.
// A quantity of zero or below is a silent no-op: removal stays a distinct,
// explicit action. (Whether q <= 0 should imply removal is an unresolved
// product decision; current behavior is kept.)
func (s *Slice) UpdateQuantity(id string, q int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q > 0 {
		for i := range s.lines {
			if s.lines[i].ID == id {
				s.lines[i].Quantity = q
				break
			}
		}
	}
	s.persist()
}

func (s *Slice) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = []domain.CartLine{}
	s.persist()
}

func (s *Slice) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count is the total item count: the sum of quantities across lines.
func (s *Slice) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Slice) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *Slice) subtotalLocked() float64 {
	sum := 0.0
	for _, l := range s.lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

// Totals returns subtotal, tax at the given rate, and their sum.
func (s *Slice) Totals(rate float64) (subtotal, tax, total float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal = s.subtotalLocked()
	tax = subtotal * rate
	return subtotal, tax, subtotal + tax
}

// persist writes the full line list; callers hold the lock. Write failures
// are non-fatal by policy.
func (s *Slice) persist() {
	b, err := json.Marshal(s.lines)
	if err == nil {
		err = s.store.Save(s.key, b)
	}
	if err != nil {
		applog.NonFatal(nil, "cart.snapshot.save", err, map[string]any{"key": s.key})
	}
}
