package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
	)
)

// GetOrderDetailQuery retrieves one order by its external reference: the
// identifier the commerce platform assigned, which is what floor staff
// scan and support staff paste from tickets.
type GetOrderDetailQuery struct { //nolint:recvcheck //using for validation
	externalRef string

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a lookup by external reference.
func NewGetOrderDetailQuery(externalRef string) (GetOrderDetailQuery, error) {
	q := GetOrderDetailQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setExternalRef(externalRef); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// ExternalRef returns the commerce platform's order identifier.
func (q GetOrderDetailQuery) ExternalRef() string { return q.externalRef }

func (q *GetOrderDetailQuery) setExternalRef(externalRef string) error {
	if externalRef == "" {
		return errs.NewValueIsRequiredError("externalRef")
	}
	q.externalRef = externalRef
	return nil
}

// OrderDetailLineItem is one line of the order detail with its progress
// counters and review state.
type OrderDetailLineItem struct {
	Ref                   string
	ProductID             string
	VariantID             string
	Name                  string
	SKU                   string
	Quantity              int
	PickedUnits           int
	PackedUnits           int
	Picked                bool
	Packed                bool
	Flags                 []string
	Refunded              bool
	Substituted           bool
	SubstitutionConfirmed bool
	Approved              bool
	AdminNote             string
	CustomerNote          string
}

// OrderDetailDelivery is the delivery stop metadata attached by the sync
// sweep, absent until a trip has been planned.
type OrderDetailDelivery struct {
	TripID       string
	DriverName   string
	StopSequence int
	ETA          *time.Time
}

// OrderDetailPhoto is one packing evidence photo.
type OrderDetailPhoto struct {
	URL       string
	StorageID string
}

// GetOrderDetailQueryResponse is the full order view: header, line items,
// totes, photos and delivery metadata.
type GetOrderDetailQueryResponse struct {
	ID           kernel.UUID
	ExternalRef  string
	Number       string
	CustomerName string
	Status       string
	PickerID     *kernel.UUID
	PackerID     *kernel.UUID
	BoxCount     int
	AdminNote    string
	Approved     bool
	LineItems    []OrderDetailLineItem
	ToteBarcodes []string
	Photos       []OrderDetailPhoto
	Delivery     *OrderDetailDelivery
}
