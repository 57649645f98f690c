package store

import (
	"errors"
	"sync"

	"github.com/maturomero/huellitas-tpo-front/models"
)

// ErrInsufficientStock rejects an AddLine whose proposed quantity would
// exceed the applicable stock limit. The cart is left untouched; the
// caller surfaces a notification, not a hard failure.
var ErrInsufficientStock = errors.New("insufficient stock")

// CartStore owns one session's cart. All mutations go through the pure
// reducer functions below; the store only adds the mutex and the
// persistence hook.
type CartStore struct {
	mu       sync.Mutex
	cart     models.Cart
	onChange func(models.Cart)
}

func NewCartStore(onChange func(models.Cart)) *CartStore {
	return &CartStore{onChange: onChange}
}

// recompute derives both totals from the line list. A missing transfer
// price counts as zero. Plain sum, so operation order never matters.
func recompute(lines []models.CartLine) (total, totalWithDiscount float64) {
	for _, line := range lines {
		total += line.Price * float64(line.Units)
		totalWithDiscount += line.PriceWithTransferDiscount * float64(line.Units)
	}
	return total, totalWithDiscount
}

// reduceAdd is the pure AddLine transition. One line per product id:
// re-adding increments the quantity. The stock limit is the product's
// stock, falling back to the existing line's cached stock, falling back
// to the requested units themselves.
func reduceAdd(cart models.Cart, product models.Product, units int, imageRef string) (models.Cart, error) {
	if units < 1 {
		units = 1
	}

	existing := -1
	for i, line := range cart.Lines {
		if line.ProductID == product.ID {
			existing = i
			break
		}
	}

	// Permissive fallback chain: product stock, then the line's cached
	// stock, then the requested units themselves. Negative means the
	// backend never reported a count; zero is a real sold-out.
	stock := product.Stock
	if stock < 0 && existing >= 0 {
		stock = cart.Lines[existing].Stock
	}
	if stock < 0 {
		stock = units
	}

	proposed := units
	if existing >= 0 {
		proposed = cart.Lines[existing].Units + units
	}
	if proposed > stock {
		return cart, ErrInsufficientStock
	}

	lines := make([]models.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)

	if existing >= 0 {
		lines[existing].Units = proposed
		if imageRef != "" {
			lines[existing].ImageRef = imageRef
		}
	} else {
		lines = append(lines, models.CartLine{
			ProductID:                 product.ID,
			Name:                      product.Name,
			Price:                     product.Price,
			PriceWithTransferDiscount: product.PriceWithTransferDiscount,
			Stock:                     product.Stock,
			Units:                     proposed,
			ImageRef:                  imageRef,
		})
	}

	next := models.Cart{Lines: lines}
	next.Total, next.TotalWithDiscount = recompute(lines)
	return next, nil
}

// reduceRemove is the pure RemoveLine transition; removing an absent
// product id is a no-op, not an error.
func reduceRemove(cart models.Cart, productID uint) models.Cart {
	lines := make([]models.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		if line.ProductID != productID {
			lines = append(lines, line)
		}
	}
	next := models.Cart{Lines: lines}
	next.Total, next.TotalWithDiscount = recompute(lines)
	return next
}

// AddLine commits the add transition, or returns ErrInsufficientStock
// with the state unchanged.
func (s *CartStore) AddLine(product models.Product, units int, imageRef string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := reduceAdd(s.cart, product, units, imageRef)
	if err != nil {
		return s.cart, err
	}
	s.commit(next)
	return next, nil
}

// RemoveLine deletes the line for a product id if present.
func (s *CartStore) RemoveLine(productID uint) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(reduceRemove(s.cart, productID))
	return s.cart
}

// Clear empties the cart and zeroes both totals.
func (s *CartStore) Clear() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(models.Cart{})
	return s.cart
}

// Snapshot returns a copy of the current cart state.
func (s *CartStore) Snapshot() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCart(s.cart)
}

// Replace swaps in a restored cart without firing the persistence hook.
func (s *CartStore) Replace(cart models.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart.Total, cart.TotalWithDiscount = recompute(cart.Lines)
	s.cart = cart
}

func (s *CartStore) commit(next models.Cart) {
	s.cart = next
	if s.onChange != nil {
		s.onChange(copyCart(next))
	}
}

func copyCart(cart models.Cart) models.Cart {
	lines := make([]models.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	cart.Lines = lines
	return cart
}
