package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"fashionfuel/internal/domain"
	"fashionfuel/internal/shopapi"
)

// AllCategories selects the unfiltered view.
const AllCategories = "all"

// Slice caches the remote catalog. It holds no browse state: category and
// search live per session (see Browse), so concurrent requests never see
// each other's filter.
type Slice struct {
	api *shopapi.Client

	mu       sync.Mutex
	items    []domain.Product
	selected *domain.Product
	loading  bool
	err      error
}

func New(api *shopapi.Client) *Slice {
	return &Slice{api: api}
}

// FetchProducts loads the full catalog. On failure the error is terminal
// until the operation is re-invoked; there is no retry.
func (s *Slice) FetchProducts(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	items, err := s.api.Products(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return err
	}
	s.items = items
	return nil
}

// FetchProductByID populates the selected product under the same
// three-state contract as FetchProducts.
func (s *Slice) FetchProductByID(ctx context.Context, id string) (domain.Product, error) {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	p, err := s.api.Product(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return domain.Product{}, err
	}
	s.selected = &p
	return p, nil
}

// Lookup resolves a product id against the cached catalog.
func (s *Slice) Lookup(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *Slice) Items() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProducts(s.items)
}

func (s *Slice) Selected() *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	p := *s.selected
	return &p
}

func (s *Slice) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Slice) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ByCategory returns the items in the given category; AllCategories (or
// blank) returns everything.
func ByCategory(items []domain.Product, category string) []domain.Product {
	if category == AllCategories || category == "" {
		return copyProducts(items)
	}
	out := []domain.Product{}
	for _, p := range items {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Rank orders items by approximate match quality against the query over
// title, category and description. A blank query returns items unchanged.
func Rank(items []domain.Product, query string) []domain.Product {
	if strings.TrimSpace(query) == "" {
		return copyProducts(items)
	}
	matches := fuzzy.FindFrom(strings.ToLower(query), searchSource(items))
	ranked := make([]domain.Product, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, items[m.Index])
	}
	return ranked
}

// searchSource feeds the fuzzy matcher one lowercased haystack per product.
type searchSource []domain.Product

func (s searchSource) Len() int { return len(s) }
func (s searchSource) String(i int) string {
	p := s[i]
	return strings.ToLower(p.Title + " " + p.Category + " " + p.Description)
}

func copyProducts(in []domain.Product) []domain.Product {
	out := make([]domain.Product, len(in))
	copy(out, in)
	return out
}
