package store

import (
	"context"
	"sync"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/models"
)

// AttributeStore holds the animal and category reference lists that
// populate filter and selection UI.
type AttributeStore struct {
	mu         sync.Mutex
	animals    []models.Animal
	categories []models.Category
	client     *backend.Client
}

func NewAttributeStore(client *backend.Client) *AttributeStore {
	return &AttributeStore{client: client}
}

func (s *AttributeStore) FetchAnimals(ctx context.Context, token string) ([]models.Animal, error) {
	animals, err := s.client.ListAnimals(ctx, token)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.animals = animals
	s.mu.Unlock()
	return animals, nil
}

func (s *AttributeStore) FetchCategories(ctx context.Context, token string) ([]models.Category, error) {
	categories, err := s.client.ListCategories(ctx, token)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return categories, nil
}

func (s *AttributeStore) Animals() []models.Animal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Animal, len(s.animals))
	copy(out, s.animals)
	return out
}

func (s *AttributeStore) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}
