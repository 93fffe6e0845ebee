package ports

import (
	"context"
	"io"
)

// ImportedLineItem is one line of an order payload fetched from the
// commerce platform.
type ImportedLineItem struct {
	Ref          string
	ProductID    string
	VariantID    string
	Name         string
	SKU          string
	Quantity     int
	CustomerNote string
}

// ImportedOrder is an order payload fetched from the commerce platform.
type ImportedOrder struct {
	ExternalRef  string
	Number       string
	CustomerName string
	LineItems    []ImportedLineItem
}

// OrderSource fetches open orders from the commerce platform.
// Implementations must not retry internally; the import job owns retries.
type OrderSource interface {
	// FetchOpenOrders returns the orders not yet fulfilled on the platform,
	// oldest first.
	FetchOpenOrders(ctx context.Context) ([]ImportedOrder, error)
}

// DeliveryStop is one stop of a planned trip on the delivery platform,
// correlatable to an order by its embedded order number.
type DeliveryStop struct {
	TripID         string
	StopID         string
	OrderNumber    string
	DriverMemberID string
	DriverName     string
	StopSequence   int
	Delivered      bool
}

// DeliveryService talks to the external routing platform.
type DeliveryService interface {
	// FetchStops returns today's planned stops across all trips.
	FetchStops(ctx context.Context) ([]DeliveryStop, error)

	// AddStopNote attaches a free-text note to a stop. Called at pack
	// completion with the box count; best effort.
	AddStopNote(ctx context.Context, stopID, note string) error
}

// InventoryAdjuster applies signed stock deltas on the commerce platform.
// Best effort: callers log failures and continue.
type InventoryAdjuster interface {
	AdjustInventory(ctx context.Context, variantID string, delta int) error
}

// RefundIssuer requests a refund for one line item on the commerce platform.
type RefundIssuer interface {
	IssueRefund(ctx context.Context, externalRef, lineItemRef string, quantity int) error
}

// Notification is a message for the warehouse staff chat channel.
type Notification struct {
	Kind        string
	Message     string
	Roles       []string
	OrderNumber string
	ProductID   string
	VariantID   string
}

/// Notifier delivers staff notifications. Fire and forget: implementations
// must never block a mutation on delivery.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

// StoredObject is the result of a photo upload.
type StoredObject struct {
	URL       string
	StorageID string
}

// ObjectStorage stores packing evidence photos. Delete is synchronous on
// purpose: photo removal must abort when the underlying object cannot be
// deleted.
type ObjectStorage interface {
	Upload(ctx context.Context, name string, contentType string, body io.Reader) (StoredObject, error)
	Delete(ctx context.Context, storageID string) error
}
