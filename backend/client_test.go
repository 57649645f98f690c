package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsNormalizesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("sinStock"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`[
			{"id":1,"name":"Alimento","price":100,"stock":2,"status":true,
			 "priceWithTransferDiscount":90,
			 "productImages":[{"id":7},{"id":8}],
			 "animal":[{"id":1,"name":"Perro"},{"id":2,"name":"Gato"}],
			 "category":{"id":3,"name":"food","description":"Alimentos"}},
			{"id":2,"name":"Correa","price":50,"status":true,
			 "price_with_transfer_discount":40,"categoryName":"Accesorios"}
		]`))
	}))
	defer srv.Close()

	products, err := NewClient(srv.URL).ListProducts(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, products, 2)

	p := products[0]
	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, 90.0, p.PriceWithTransferDiscount)
	assert.Equal(t, 2, p.Stock)
	assert.Equal(t, "Alimentos", p.Category)
	assert.Equal(t, []string{"Perro", "Gato"}, p.Animals)
	assert.Equal(t, []uint{7, 8}, p.ImageIDs)

	// Snake-cased spellings and a missing stock field.
	q := products[1]
	assert.Equal(t, 40.0, q.PriceWithTransferDiscount)
	assert.Equal(t, -1, q.Stock)
	assert.Equal(t, "Accesorios", q.Category)
}

func TestGetProductNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product not found"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetProduct(context.Background(), "", 99)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Product not found", apiErr.Error())
}

func TestAPIErrorMessageExtraction(t *testing.T) {
	assert.Equal(t, "boom", extractMessage([]byte(`{"message":"boom"}`)))
	assert.Equal(t, "boom", extractMessage([]byte(`{"error":"boom"}`)))
	assert.Empty(t, extractMessage([]byte(`not json`)))

	err := &APIError{Status: 502}
	assert.Equal(t, "backend returned status 502", err.Error())
}

func TestPlaceOrderRequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.JSONEq(t, `"42"`, string(body["userId"]))
		assert.JSONEq(t, `"card"`, string(body["paymentMethod"]))
		assert.JSONEq(t, `[{"productId":1,"units":2}]`, string(body["orderProductRequest"]))

		w.Write([]byte(`{"id":5,"totalPrice":200,"status":"pending","paymentMethod":"card",
			"orderProducts":[{"id":1,"productId":1,"name":"Alimento","price":100,"units":2}]}`))
	}))
	defer srv.Close()

	order, err := NewClient(srv.URL).PlaceOrder(context.Background(), "tok", "42", "card",
		[]OrderProductRequest{{ProductID: 1, Units: 2}})
	require.NoError(t, err)

	assert.Equal(t, uint(5), order.ID)
	assert.Equal(t, 200.0, order.TotalPrice)
	// Status always comes back uppercased.
	assert.Equal(t, "PENDING", string(order.Status))
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 2, order.Lines[0].Units)
}

func TestMapOrderSnakeSpellingsAndDefaults(t *testing.T) {
	order := mapOrder(orderPayload{
		ID:                 3,
		TotalPriceSnake:    150,
		Status:             "approved",
		PaymentMethodSnake: "transfer",
		CreatedAt:          "2026-08-01",
		OrderProducts: []orderLinePayload{
			{ID: 1, ProductIDSnake: 9, PriceDiscountSnake: 5},
		},
	})

	assert.Equal(t, 150.0, order.TotalPrice)
	assert.Equal(t, "APPROVED", string(order.Status))
	assert.Equal(t, "transfer", order.PaymentMethod)
	assert.Equal(t, "2026-08-01", order.Date)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, uint(9), order.Lines[0].ProductID)
	assert.Equal(t, 5.0, order.Lines[0].PriceDiscount)
	// A line with no unit count at all means one unit.
	assert.Equal(t, 1, order.Lines[0].Units)
}

func TestAuthenticateAcceptsNumericUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"userId":12,"access_token":"tok-12"}`))
	}))
	defer srv.Close()

	creds, err := NewClient(srv.URL).Authenticate(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "12", creds.UserID)
	assert.Equal(t, "tok-12", creds.Token)
}

func TestMapProfileNameSpellings(t *testing.T) {
	assert.Equal(t, "Ada", mapProfile(profilePayload{FullName: "Ada"}).FullName)
	assert.Equal(t, "Ada", mapProfile(profilePayload{FullNameSnake: "Ada"}).FullName)
	assert.Equal(t, "Ada", mapProfile(profilePayload{Name: "Ada"}).FullName)
}
