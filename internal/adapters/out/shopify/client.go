// Package shopify implements the commerce platform ports against the
// Shopify Admin REST API: open order retrieval for the import sweep,
// inventory adjustments and line item refunds.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/pkg/errors"
)

const defaultAPIVersion = "2024-10"

// Client talks to one shop's Admin API. It implements ports.OrderSource,
// ports.InventoryAdjuster and ports.RefundIssuer.
type Client struct {
	baseURL    string
	token      string
	locationID string
	httpc      *http.Client
}

// New creates a client for the given shop domain ("myshop.myshopify.com").
// An empty apiVersion falls back to the pinned default. locationID is the
// warehouse location inventory adjustments apply to.
func New(shop, token, apiVersion, locationID string) *Client {
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	return &Client{
		baseURL:    fmt.Sprintf("https://%s/admin/api/%s", shop, apiVersion),
		token:      token,
		locationID: locationID,
		httpc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ordersResp struct {
	Orders []struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Customer struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
		} `json:"customer"`
		LineItems []struct {
			ID         int64  `json:"id"`
			ProductID  int64  `json:"product_id"`
			VariantID  int64  `json:"variant_id"`
			Title      string `json:"title"`
			SKU        string `json:"sku"`
			Quantity   int    `json:"quantity"`
			Properties []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"properties"`
		} `json:"line_items"`
	} `json:"orders"`
}

// FetchOpenOrders returns the shop's unfulfilled orders, oldest first.
func (c *Client) FetchOpenOrders(ctx context.Context) ([]ports.ImportedOrder, error) {
	imported, err := c.fetchOpenOrders(ctx)
	if err != nil {
		return nil, errs.NewExternalDependencyError("shopify", err)
	}
	return imported, nil
}

func (c *Client) fetchOpenOrders(ctx context.Context) ([]ports.ImportedOrder, error) {
	u, err := url.Parse(c.baseURL + "/orders.json")
	if err != nil {
		return nil, errors.Wrap(err, "parse orders url")
	}

	q := u.Query()
	q.Set("fulfillment_status", "unfulfilled")
	q.Set("status", "open")
	q.Set("order", "created_at asc")
	q.Set("limit", "50")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("shopify orders http %d", resp.StatusCode)
	}

	var r ordersResp
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}

	imported := make([]ports.ImportedOrder, 0, len(r.Orders))
	for _, o := range r.Orders {
		imp := ports.ImportedOrder{
			ExternalRef:  strconv.FormatInt(o.ID, 10),
			Number:       o.Name,
			CustomerName: strings.TrimSpace(o.Customer.FirstName + " " + o.Customer.LastName),
		}
		for _, li := range o.LineItems {
			item := ports.ImportedLineItem{
				Ref:       strconv.FormatInt(li.ID, 10),
				ProductID: strconv.FormatInt(li.ProductID, 10),
				Name:      li.Title,
				SKU:       li.SKU,
				Quantity:  li.Quantity,
			}
			if li.VariantID != 0 {
				item.VariantID = strconv.FormatInt(li.VariantID, 10)
			}
			for _, p := range li.Properties {
				if strings.EqualFold(p.Name, "note") {
					item.CustomerNote = p.Value
				}
			}
			imp.LineItems = append(imp.LineItems, item)
		}
		imported = append(imported, imp)
	}

	return imported, nil
}

// AdjustInventory applies a signed available-quantity delta at the
// configured location.
func (c *Client) AdjustInventory(ctx context.Context, variantID string, delta int) error {
	body := map[string]any{
		"location_id":          c.locationID,
		"inventory_item_id":    variantID,
		"available_adjustment": delta,
	}

	if err := c.post(ctx, "/inventory_levels/adjust.json", body); err != nil {
		return errs.NewExternalDependencyError("shopify", err)
	}
	return nil
}

// IssueRefund requests a refund of the given quantity for one line item.
// The platform calculates the amount; units are not restocked.
func (c *Client) IssueRefund(ctx context.Context, externalRef, lineItemRef string, quantity int) error {
	body := map[string]any{
		"refund": map[string]any{
			"notify": true,
			"refund_line_items": []map[string]any{
				{
					"line_item_id": lineItemRef,
					"quantity":     quantity,
					"restock_type": "no_restock",
				},
			},
		},
	}

	if err := c.post(ctx, fmt.Sprintf("/orders/%s/refunds.json", externalRef), body); err != nil {
		return errs.NewExternalDependencyError("shopify", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "marshal body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("X-Shopify-Access-Token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("shopify %s http %d", path, resp.StatusCode)
	}

	return nil
}
