package store

import (
	"context"
	"strings"
	"sync"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/models"
)

// CatalogStore mirrors the backend's product list into local view
// state, plus a current-product pointer.
type CatalogStore struct {
	mu      sync.Mutex
	items   []models.Product
	current *models.Product
	loaded  bool
	client  *backend.Client
}

func NewCatalogStore(client *backend.Client) *CatalogStore {
	return &CatalogStore{client: client}
}

// Fetch replaces the mirrored list with the backend's. A failed fetch
// empties the mirror, matching the slice's rejected case.
func (s *CatalogStore) Fetch(ctx context.Context, token string) error {
	products, err := s.client.ListProducts(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.items = nil
		s.loaded = false
		return err
	}
	s.items = products
	s.loaded = true
	return nil
}

// Loaded reports whether a fetch has succeeded since startup.
func (s *CatalogStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Filter narrows the mirrored items. Zero values mean "no constraint";
// maxPrice < 0 disables the upper bound.
type Filter struct {
	Animal   string
	Category string
	Search   string
	MinPrice float64
	MaxPrice float64
}

func (f Filter) matches(p models.Product) bool {
	if f.Animal != "" {
		found := false
		for _, a := range p.Animals {
			if strings.EqualFold(a, f.Animal) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	return true
}

// List returns the mirrored products matching the filter.
func (s *CatalogStore) List(f Filter) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, 0, len(s.items))
	for _, p := range s.items {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Product looks a product up in the mirror.
func (s *CatalogStore) Product(id uint) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// SetCurrent points the store at one mirrored product.
func (s *CatalogStore) SetCurrent(id uint) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			s.current = &p
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *CatalogStore) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func (s *CatalogStore) Current() (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Product{}, false
	}
	return *s.current, true
}

// Insert prepends a freshly created product.
func (s *CatalogStore) Insert(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.Product{p}, s.items...)
}

// Update replaces the mirrored entry for an updated product.
func (s *CatalogStore) Update(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = p
			break
		}
	}
	if s.current != nil && s.current.ID == p.ID {
		s.current = &p
	}
}

// Remove drops a deleted product from the mirror.
func (s *CatalogStore) Remove(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.items[:0]
	for _, p := range s.items {
		if p.ID != id {
			items = append(items, p)
		}
	}
	s.items = items
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
}

// DecrementStock reduces the mirrored stock after an order placement,
// never below zero.
func (s *CatalogStore) DecrementStock(id uint, units int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id || s.items[i].Stock < 0 {
			continue
		}
		updated := s.items[i].Stock - units
		if updated < 0 {
			updated = 0
		}
		s.items[i].Stock = updated
		if s.current != nil && s.current.ID == id {
			p := s.items[i]
			s.current = &p
		}
	}
}
