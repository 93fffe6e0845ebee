package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler reads one order row plus its assigned tote
// barcodes straight from the database.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// detailBucket mirrors one quantity bucket of the line item document.
type detailBucket struct {
	Quantity int `json:"quantity"`
}

// detailItemState mirrors the per-stage bucket triple.
type detailItemState struct {
	Verified   detailBucket `json:"verified"`
	Damaged    detailBucket `json:"damaged"`
	OutOfStock detailBucket `json:"outOfStock"`
}

func (s detailItemState) units() int {
	return s.Verified.Quantity + s.Damaged.Quantity + s.OutOfStock.Quantity
}

// detailItem mirrors the slice of the line item document the detail needs.
type detailItem struct {
	Ref          string          `json:"ref"`
	ProductID    string          `json:"productId"`
	VariantID    string          `json:"variantId"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Quantity     int             `json:"quantity"`
	Pick         detailItemState `json:"pick"`
	Pack         detailItemState `json:"pack"`
	Picked       bool            `json:"picked"`
	Packed       bool            `json:"packed"`
	Flags        []string        `json:"flags"`
	Refund       bool            `json:"refund"`
	Subbed       bool            `json:"subbed"`
	SubConfirmed bool            `json:"subConfirmed"`
	Approved     bool            `json:"approved"`
	AdminNote    string          `json:"adminNote"`
	CustomerNote string          `json:"customerNote"`
}

type detailDelivery struct {
	TripID       string     `json:"tripId"`
	DriverName   string     `json:"driverName"`
	StopSequence int        `json:"stopSequence"`
	ETA          *time.Time `json:"eta"`
}

type detailPhoto struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

// Handle executes the query.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	var (
		id                 uuid.UUID
		number             string
		customerName       string
		status             int
		pickerID, packerID *uuid.UUID
		lineItems          []byte
		delivery           []byte
		photos             []byte
		boxCount           int
		adminNote          string
		approved           bool
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT id, number, customer_name, status, picker_id, packer_id,
		       line_items, delivery, photos, box_count, admin_note, approved
		FROM orders
		WHERE external_ref = ?
	`, query.ExternalRef()).Row().Scan(
		&id, &number, &customerName, &status, &pickerID, &packerID,
		&lineItems, &delivery, &photos, &boxCount, &adminNote, &approved,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderDetailQueryResponse{}, errs.NewObjectNotFoundError("order", query.ExternalRef())
		}
		return GetOrderDetailQueryResponse{}, err
	}

	resp := GetOrderDetailQueryResponse{
		ExternalRef:  query.ExternalRef(),
		Number:       number,
		CustomerName: customerName,
		Status:       order.Status(status).String(),
		BoxCount:     boxCount,
		AdminNote:    adminNote,
		Approved:     approved,
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	if pickerID != nil {
		pID, pickerErr := kernel.UUIDFromBytes((*pickerID)[:])
		if pickerErr != nil {
			return GetOrderDetailQueryResponse{}, pickerErr
		}
		resp.PickerID = &pID
	}
	if packerID != nil {
		pID, packerErr := kernel.UUIDFromBytes((*packerID)[:])
		if packerErr != nil {
			return GetOrderDetailQueryResponse{}, packerErr
		}
		resp.PackerID = &pID
	}

	var items []detailItem
	if err = json.Unmarshal(lineItems, &items); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.LineItems = make([]OrderDetailLineItem, 0, len(items))
	for _, item := range items {
		resp.LineItems = append(resp.LineItems, OrderDetailLineItem{
			Ref:                   item.Ref,
			ProductID:             item.ProductID,
			VariantID:             item.VariantID,
			Name:                  item.Name,
			SKU:                   item.SKU,
			Quantity:              item.Quantity,
			PickedUnits:           item.Pick.units(),
			PackedUnits:           item.Pack.units(),
			Picked:                item.Picked,
			Packed:                item.Packed,
			Flags:                 item.Flags,
			Refunded:              item.Refund,
			Substituted:           item.Subbed,
			SubstitutionConfirmed: item.SubConfirmed,
			Approved:              item.Approved,
			AdminNote:             item.AdminNote,
			CustomerNote:          item.CustomerNote,
		})
	}

	if len(photos) > 0 {
		var photoDocs []detailPhoto
		if err = json.Unmarshal(photos, &photoDocs); err != nil {
			return GetOrderDetailQueryResponse{}, err
		}
		resp.Photos = make([]OrderDetailPhoto, 0, len(photoDocs))
		for _, p := range photoDocs {
			resp.Photos = append(resp.Photos, OrderDetailPhoto{URL: p.URL, StorageID: p.StorageID})
		}
	}

	if len(delivery) > 0 {
		var d *detailDelivery
		if err = json.Unmarshal(delivery, &d); err != nil {
			return GetOrderDetailQueryResponse{}, err
		}
		if d != nil {
			resp.Delivery = &OrderDetailDelivery{
				TripID:       d.TripID,
				DriverName:   d.DriverName,
				StopSequence: d.StopSequence,
				ETA:          d.ETA,
			}
		}
	}

	resp.ToteBarcodes, err = h.toteBarcodes(ctx, id)
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderDetailQueryHandler) toteBarcodes(ctx context.Context, orderID uuid.UUID) ([]string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT barcode
		FROM totes
		WHERE order_id = ?
		ORDER BY barcode
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	barcodes := make([]string, 0)
	for rows.Next() {
		var barcode string
		if err = rows.Scan(&barcode); err != nil {
			return nil, err
		}
		barcodes = append(barcodes, barcode)
	}

	return barcodes, rows.Err()
}
