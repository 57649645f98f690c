package store

import (
	"context"
	"sync"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/models"
)

// OrderStore mirrors the session's order history plus a current-order
// pointer. Orders are created and priced by the backend; the store only
// reads, lists and deletes.
type OrderStore struct {
	mu      sync.Mutex
	items   []models.Order
	current *models.Order
	client  *backend.Client
}

func NewOrderStore(client *backend.Client) *OrderStore {
	return &OrderStore{client: client}
}

// Fetch replaces the mirrored history.
func (s *OrderStore) Fetch(ctx context.Context, token string) ([]models.Order, error) {
	orders, err := s.client.ListOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.items = orders
	s.mu.Unlock()
	return orders, nil
}

// Get fetches one order and makes it current.
func (s *OrderStore) Get(ctx context.Context, token string, id uint) (models.Order, error) {
	order, err := s.client.GetOrder(ctx, token, id)
	if err != nil {
		return models.Order{}, err
	}
	s.mu.Lock()
	s.current = &order
	s.mu.Unlock()
	return order, nil
}

// Place creates an order from cart lines and appends it to the mirror.
func (s *OrderStore) Place(ctx context.Context, token, userID, paymentMethod string, lines []backend.OrderProductRequest) (models.Order, error) {
	order, err := s.client.PlaceOrder(ctx, token, userID, paymentMethod, lines)
	if err != nil {
		return models.Order{}, err
	}
	s.mu.Lock()
	s.items = append(s.items, order)
	s.mu.Unlock()
	return order, nil
}

// Delete removes an order upstream and from the mirror; a deleted
// current order is cleared.
func (s *OrderStore) Delete(ctx context.Context, token string, id uint) error {
	if err := s.client.DeleteOrder(ctx, token, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.items[:0]
	for _, o := range s.items {
		if o.ID != id {
			items = append(items, o)
		}
	}
	s.items = items
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	return nil
}

// List returns the mirrored history.
func (s *OrderStore) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.items))
	copy(out, s.items)
	return out
}

func (s *OrderStore) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
