// Package fake is a stand-in commerce platform for local development.
// It serves a small fixed batch of open orders and accepts every
// inventory adjustment and refund without side effects.
package fake

import (
	"context"
	"sync"

	"fulfillment/internal/core/ports"
)

type FakeClient struct {
	mu      sync.Mutex
	fetched bool
}

func New() *FakeClient { return &FakeClient{} }

// FetchOpenOrders returns two canned orders on the first call and nothing
// afterwards, so repeated import sweeps behave like a drained shop.
func (f *FakeClient) FetchOpenOrders(_ context.Context) ([]ports.ImportedOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fetched {
		return []ports.ImportedOrder{}, nil
	}
	f.fetched = true

	return []ports.ImportedOrder{
		{
			ExternalRef:  "9001",
			Number:       "#1001",
			CustomerName: "Ada Lovelace",
			LineItems: []ports.ImportedLineItem{
				{Ref: "9001-1", ProductID: "101", VariantID: "201", Name: "Oat Milk 1L", SKU: "OAT-1L", Quantity: 2},
				{Ref: "9001-2", ProductID: "102", VariantID: "202", Name: "Sourdough Loaf", SKU: "SRD-800", Quantity: 1},
			},
		},
		{
			ExternalRef:  "9002",
			Number:       "#1002",
			CustomerName: "Grace Hopper",
			LineItems: []ports.ImportedLineItem{
				{Ref: "9002-1", ProductID: "103", VariantID: "203", Name: "Free Range Eggs 12pk", SKU: "EGG-12", Quantity: 3, CustomerNote: "fragile"},
			},
		},
	}, nil
}

func (f *FakeClient) AdjustInventory(_ context.Context, _ string, _ int) error {
	return nil
}

func (f *FakeClient) IssueRefund(_ context.Context, _, _ string, _ int) error {
	return nil
}
