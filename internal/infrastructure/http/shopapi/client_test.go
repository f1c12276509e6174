package shopapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikasgautam18/mcp-example/internal/config"
	"github.com/vikasgautam18/mcp-example/internal/domain/order"
	"github.com/vikasgautam18/mcp-example/internal/domain/product"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.ShopAPIConfig{BaseURL: srv.URL, TimeoutMS: 2000})
}

func TestClient_ListProducts(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"Laptop","price":1200.0,"stock":10}]`))
	}))

	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.Product{ID: "1", Name: "Laptop", Price: 1200.00, Stock: 10}, products[0])
}

func TestClient_GetProduct_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "Product not found"}`))
	}))

	p, err := client.GetProduct(context.Background(), "999")

	assert.Nil(t, p)
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestClient_CreateOrder(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc","product_id":"2","product_name":"Mouse","quantity":5,"total_price":125.0,"status":"pending"}`))
	}))

	o, err := client.CreateOrder(context.Background(), "2", 5)

	require.NoError(t, err)
	assert.Equal(t, "abc", o.ID)
	assert.Equal(t, 125.00, o.TotalPrice)
	assert.Equal(t, order.StatusPending, o.Status)
}

func TestClient_CreateOrder_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		check    func(t *testing.T, err error)
	}{
		{
			name:   "missing fields",
			status: http.StatusBadRequest,
			body:   `{"error": "Missing product_id or quantity"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, order.ErrMissingField)
			},
		},
		{
			name:   "unknown product",
			status: http.StatusNotFound,
			body:   `{"error": "Product not found"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, product.ErrNotFound)
			},
		},
		{
			name:   "insufficient stock keeps server message",
			status: http.StatusBadRequest,
			body:   `{"error": "Not enough stock for product Laptop. Available: 10"}`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
				assert.Equal(t, "Not enough stock for product Laptop. Available: 10", apiErr.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			o, err := client.CreateOrder(context.Background(), "x", 1)
			assert.Nil(t, o)
			tt.check(t, err)
		})
	}
}

func TestClient_GetOrder_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "Order not found"}`))
	}))

	o, err := client.GetOrder(context.Background(), "nope")

	assert.Nil(t, o)
	assert.ErrorIs(t, err, order.ErrNotFound)
}
