package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturomero/huellitas-tpo-front/models"
)

func product(id uint, price float64, stock int) models.Product {
	return models.Product{ID: id, Name: "P", Price: price, Stock: stock}
}

func TestCartAddUntilStockRunsOut(t *testing.T) {
	s := NewCartStore(nil)
	p1 := product(1, 100, 2)

	cart, err := s.AddLine(p1, 1, "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, cart.Total)

	cart, err = s.AddLine(p1, 1, "")
	require.NoError(t, err)
	assert.Equal(t, 200.0, cart.Total)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Units)

	cart, err = s.AddLine(p1, 1, "")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 200.0, cart.Total)
	assert.Equal(t, 2, cart.Lines[0].Units)
}

func TestCartSoldOutProductRejected(t *testing.T) {
	s := NewCartStore(nil)

	_, err := s.AddLine(product(1, 100, 0), 1, "")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Empty(t, s.Snapshot().Lines)
}

func TestCartUnknownStockFallsBackToRequestedUnits(t *testing.T) {
	s := NewCartStore(nil)

	cart, err := s.AddLine(product(1, 10, -1), 3, "")
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Lines[0].Units)
	assert.Equal(t, 30.0, cart.Total)
}

func TestCartTotalsWithTransferDiscount(t *testing.T) {
	s := NewCartStore(nil)

	p1 := product(1, 100, 5)
	p2 := models.Product{ID: 2, Name: "Q", Price: 50, PriceWithTransferDiscount: 40, Stock: 5}

	_, err := s.AddLine(p1, 2, "")
	require.NoError(t, err)
	cart, err := s.AddLine(p2, 1, "")
	require.NoError(t, err)

	assert.Equal(t, 250.0, cart.Total)
	// P1 has no transfer price so it contributes zero here.
	assert.Equal(t, 40.0, cart.TotalWithDiscount)
}

func TestCartRemoveLine(t *testing.T) {
	s := NewCartStore(nil)
	_, err := s.AddLine(product(1, 100, 5), 2, "")
	require.NoError(t, err)
	_, err = s.AddLine(product(2, 50, 5), 1, "")
	require.NoError(t, err)

	cart := s.RemoveLine(1)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, uint(2), cart.Lines[0].ProductID)
	assert.Equal(t, 50.0, cart.Total)

	// Removing an id that is not in the cart changes nothing.
	cart = s.RemoveLine(99)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 50.0, cart.Total)
}

func TestCartClear(t *testing.T) {
	s := NewCartStore(nil)
	_, err := s.AddLine(product(1, 100, 5), 2, "")
	require.NoError(t, err)

	cart := s.Clear()
	assert.Empty(t, cart.Lines)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.TotalWithDiscount)
}

func TestCartUnitsBelowOneCountAsOne(t *testing.T) {
	s := NewCartStore(nil)

	cart, err := s.AddLine(product(1, 100, 5), 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Lines[0].Units)
}

func TestCartOnChangeFiresPerMutation(t *testing.T) {
	var seen []models.Cart
	s := NewCartStore(func(c models.Cart) { seen = append(seen, c) })

	_, err := s.AddLine(product(1, 100, 5), 1, "")
	require.NoError(t, err)
	s.RemoveLine(1)
	s.Clear()

	require.Len(t, seen, 3)
	assert.Equal(t, 100.0, seen[0].Total)
	assert.Empty(t, seen[1].Lines)
}

func TestCartRejectedAddDoesNotFireOnChange(t *testing.T) {
	fired := 0
	s := NewCartStore(func(models.Cart) { fired++ })

	_, err := s.AddLine(product(1, 100, 0), 1, "")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Zero(t, fired)
}

func TestCartReplaceRecomputesWithoutHook(t *testing.T) {
	fired := 0
	s := NewCartStore(func(models.Cart) { fired++ })

	s.Replace(models.Cart{Lines: []models.CartLine{
		{ProductID: 1, Price: 100, Units: 2},
		{ProductID: 2, Price: 50, PriceWithTransferDiscount: 40, Units: 1},
	}})

	cart := s.Snapshot()
	assert.Equal(t, 250.0, cart.Total)
	assert.Equal(t, 40.0, cart.TotalWithDiscount)
	assert.Zero(t, fired)
}
