package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/models"
)

func seededCatalog() *CatalogStore {
	s := NewCatalogStore(nil)
	s.items = []models.Product{
		{ID: 1, Name: "Alimento premium", Price: 100, Stock: 5, Category: "Alimentos", Animals: []string{"Perro"}},
		{ID: 2, Name: "Correa", Price: 50, Stock: 3, Category: "Accesorios", Animals: []string{"Perro", "Gato"}},
		{ID: 3, Name: "Rascador", Price: 200, Stock: -1, Category: "Accesorios", Animals: []string{"Gato"}},
	}
	s.loaded = true
	return s
}

func TestCatalogFetchReplacesMirror(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Alimento","price":100,"stock":5,"status":true}]`))
	}))
	defer srv.Close()

	s := NewCatalogStore(backend.NewClient(srv.URL))
	assert.False(t, s.Loaded())

	require.NoError(t, s.Fetch(context.Background(), ""))
	assert.True(t, s.Loaded())

	p, ok := s.Product(1)
	require.True(t, ok)
	assert.Equal(t, "Alimento", p.Name)
}

func TestCatalogFetchFailureEmptiesMirror(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewCatalogStore(backend.NewClient(srv.URL))
	s.items = []models.Product{{ID: 1}}
	s.loaded = true

	require.Error(t, s.Fetch(context.Background(), ""))
	assert.False(t, s.Loaded())
	assert.Empty(t, s.List(Filter{}))
}

func TestCatalogFilter(t *testing.T) {
	s := seededCatalog()

	assert.Len(t, s.List(Filter{}), 3)
	assert.Len(t, s.List(Filter{Animal: "gato"}), 2)
	assert.Len(t, s.List(Filter{Category: "accesorios"}), 2)
	assert.Len(t, s.List(Filter{Search: "correa"}), 1)
	assert.Len(t, s.List(Filter{MinPrice: 60}), 2)
	assert.Len(t, s.List(Filter{MaxPrice: 120}), 2)
	assert.Len(t, s.List(Filter{Animal: "Perro", MaxPrice: 60}), 1)
}

func TestCatalogCurrentPointer(t *testing.T) {
	s := seededCatalog()

	_, ok := s.Current()
	assert.False(t, ok)

	p, ok := s.SetCurrent(2)
	require.True(t, ok)
	assert.Equal(t, "Correa", p.Name)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, uint(2), cur.ID)

	s.ClearCurrent()
	_, ok = s.Current()
	assert.False(t, ok)

	_, ok = s.SetCurrent(99)
	assert.False(t, ok)
}

func TestCatalogInsertUpdateRemove(t *testing.T) {
	s := seededCatalog()

	s.Insert(models.Product{ID: 4, Name: "Pecera"})
	items := s.List(Filter{})
	require.Len(t, items, 4)
	assert.Equal(t, uint(4), items[0].ID)

	s.Update(models.Product{ID: 4, Name: "Pecera grande"})
	p, _ := s.Product(4)
	assert.Equal(t, "Pecera grande", p.Name)

	s.SetCurrent(4)
	s.Remove(4)
	_, ok := s.Product(4)
	assert.False(t, ok)
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestCatalogDecrementStock(t *testing.T) {
	s := seededCatalog()

	s.DecrementStock(1, 2)
	p, _ := s.Product(1)
	assert.Equal(t, 3, p.Stock)

	// Never below zero.
	s.DecrementStock(1, 10)
	p, _ = s.Product(1)
	assert.Zero(t, p.Stock)

	// Unknown stock stays unknown.
	s.DecrementStock(3, 1)
	p, _ = s.Product(3)
	assert.Equal(t, -1, p.Stock)
}
