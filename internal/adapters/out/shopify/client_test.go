package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		baseURL:    srv.URL,
		token:      "tok",
		locationID: "loc-1",
		httpc:      &http.Client{Timeout: 5 * time.Second},
	}
}

func TestClient_FetchOpenOrders_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders.json", r.URL.Path)
		require.Equal(t, "tok", r.Header.Get("X-Shopify-Access-Token"))
		require.Equal(t, "unfulfilled", r.URL.Query().Get("fulfillment_status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "orders": [
    {
      "id": 9001,
      "name": "#1001",
      "customer": {"first_name": "Ada", "last_name": "Lovelace"},
      "line_items": [
        {"id": 1, "product_id": 101, "variant_id": 201, "title": "Oat Milk 1L", "sku": "OAT-1L", "quantity": 2,
         "properties": [{"name": "Note", "value": "no substitutes"}]},
        {"id": 2, "product_id": 102, "variant_id": 0, "title": "Sourdough Loaf", "sku": "SRD-800", "quantity": 1}
      ]
    }
  ]
}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)

	orders, err := c.FetchOpenOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	require.Equal(t, "9001", orders[0].ExternalRef)
	require.Equal(t, "#1001", orders[0].Number)
	require.Equal(t, "Ada Lovelace", orders[0].CustomerName)
	require.Len(t, orders[0].LineItems, 2)
	require.Equal(t, "1", orders[0].LineItems[0].Ref)
	require.Equal(t, "201", orders[0].LineItems[0].VariantID)
	require.Equal(t, "no substitutes", orders[0].LineItems[0].CustomerNote)
	require.Empty(t, orders[0].LineItems[1].VariantID)
}

func TestClient_FetchOpenOrders_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	_, err := c.FetchOpenOrders(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrExternalDependency)
	require.Contains(t, err.Error(), "http 429")
}

func TestClient_AdjustInventory_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	err := c.AdjustInventory(context.Background(), "201", -3)
	require.ErrorIs(t, err, errs.ErrExternalDependency)
}

func TestClient_IssueRefund_PostsLineItem(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders/9001/refunds.json", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	err := c.IssueRefund(context.Background(), "9001", "li-1", 2)
	require.NoError(t, err)

	refund, ok := body["refund"].(map[string]any)
	require.True(t, ok)
	items, ok := refund["refund_line_items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	require.Equal(t, "li-1", item["line_item_id"])
	require.InDelta(t, 2, item["quantity"], 0)
	require.Equal(t, "no_restock", item["restock_type"])
}

func TestClient_AdjustInventory_PostsDelta(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/inventory_levels/adjust.json", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	err := c.AdjustInventory(context.Background(), "201", -3)
	require.NoError(t, err)

	require.Equal(t, "loc-1", body["location_id"])
	require.Equal(t, "201", body["inventory_item_id"])
	require.InDelta(t, -3, body["available_adjustment"], 0)
}
