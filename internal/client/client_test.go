package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"menuboard/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *[]model.MenuItem) {
	t.Helper()

	items := []model.MenuItem{
		{ID: 7, Name: "Garlic Bread", Category: "Starters", Price: "9.99"},
		{ID: 2, Name: "Pepperoni Pizza", Category: "Pizza", Price: "10.50"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/menu", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	})
	mux.HandleFunc("/api/menu/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(model.PriceResponse{Price: items[0].Price})
		case http.MethodPut:
			var req model.UpdatePriceRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			items[0].Price = req.Price
			w.WriteHeader(http.StatusOK)
		}
	})
	mux.HandleFunc("/api/menu/999", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "Menu item not found"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, &items
}

func TestClient_List(t *testing.T) {
	server, _ := newTestServer(t)
	c := New(server.URL, "/api/menu", zerolog.Nop())

	items, err := c.List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(7), items[0].ID)
	assert.Equal(t, "9.99", items[0].Price)
}

func TestClient_GetPrice(t *testing.T) {
	server, _ := newTestServer(t)
	c := New(server.URL, "/api/menu", zerolog.Nop())

	price, err := c.GetPrice(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "9.99", price)
}

func TestClient_GetPrice_NotFound(t *testing.T) {
	server, _ := newTestServer(t)
	c := New(server.URL, "/api/menu", zerolog.Nop())

	_, err := c.GetPrice(context.Background(), 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMenuItemNotFound)
}

func TestClient_UpdatePrice(t *testing.T) {
	server, items := newTestServer(t)
	c := New(server.URL, "/api/menu", zerolog.Nop())

	err := c.UpdatePrice(context.Background(), 7, "12.50")

	require.NoError(t, err)
	assert.Equal(t, "12.50", (*items)[0].Price)
}

func TestClient_UpdatePrice_ServerFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c := New(server.URL, "/api/menu", zerolog.Nop())

	err := c.UpdatePrice(context.Background(), 7, "12.50")
	require.Error(t, err)
}

func TestClient_ConnectionError(t *testing.T) {
	// A closed server yields transport errors on every call
	server := httptest.NewServer(http.NewServeMux())
	server.Close()

	c := New(server.URL, "/api/menu", zerolog.Nop())

	_, err := c.List(context.Background())
	require.Error(t, err)
}
