// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// The order aggregate is stored as one row: scalar checkpoint fields live in
// regular columns for querying, while the line items, activity log, photos and
// tote references are folded into JSONB documents that travel with the row.
package orderrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The external ref carries a unique index so import sweeps can cheaply detect
// orders already seen. Version backs the compare-and-swap update.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ExternalRef  string     `gorm:"uniqueIndex"`
	Number       string     `gorm:"index"`
	CustomerName string
	Status       int        `gorm:"index"`
	PickerID     *uuid.UUID `gorm:"type:uuid;index"`
	PackerID     *uuid.UUID `gorm:"type:uuid;index"`
	LineItems    []byte     `gorm:"type:jsonb"`
	ToteIDs      []byte     `gorm:"type:jsonb"`
	Delivery     []byte     `gorm:"type:jsonb"`
	Photos       []byte     `gorm:"type:jsonb"`
	Logs         []byte     `gorm:"type:jsonb"`
	BoxCount     int
	AdminNote    string
	Approved     bool
	Version      int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type substituteDTO struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
}

type bucketDTO struct {
	Quantity int            `json:"quantity"`
	Subbed   *substituteDTO `json:"subbed,omitempty"`
}

type itemStateDTO struct {
	Verified   bucketDTO `json:"verified"`
	Damaged    bucketDTO `json:"damaged"`
	OutOfStock bucketDTO `json:"outOfStock"`
}

type lineItemDTO struct {
	Ref          string       `json:"ref"`
	ProductID    string       `json:"productId"`
	VariantID    string       `json:"variantId,omitempty"`
	Name         string       `json:"name"`
	SKU          string       `json:"sku,omitempty"`
	Quantity     int          `json:"quantity"`
	Pick         itemStateDTO `json:"pick"`
	Pack         itemStateDTO `json:"pack"`
	Picked       bool         `json:"picked"`
	Packed       bool         `json:"packed"`
	Flags        []string     `json:"flags,omitempty"`
	Refund       bool         `json:"refund"`
	Subbed       bool         `json:"subbed"`
	SubConfirmed bool         `json:"subConfirmed"`
	Approved     bool         `json:"approved"`
	AdminNote    string       `json:"adminNote,omitempty"`
	CustomerNote string       `json:"customerNote,omitempty"`
}

type deliveryDTO struct {
	TripID         string     `json:"tripId"`
	StopID         string     `json:"stopId"`
	DriverMemberID string     `json:"driverMemberId,omitempty"`
	DriverName     string     `json:"driverName,omitempty"`
	StopSequence   int        `json:"stopSequence"`
	ETA            *time.Time `json:"eta,omitempty"`
}

type photoDTO struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

type logDTO struct {
	Kind    string    `json:"kind"`
	ItemRef string    `json:"itemRef,omitempty"`
	Actor   string    `json:"actor"`
	Message string    `json:"message,omitempty"`
	At      time.Time `json:"at"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]lineItemDTO, 0, len(aggregate.LineItems()))
	for _, li := range aggregate.LineItems() {
		items = append(items, lineItemFromDomain(li))
	}

	toteIDs := make([]uuid.UUID, 0, len(aggregate.ToteIDs()))
	for _, id := range aggregate.ToteIDs() {
		toteIDs = append(toteIDs, id.Bytes())
	}

	photos := make([]photoDTO, 0, len(aggregate.Photos()))
	for _, p := range aggregate.Photos() {
		photos = append(photos, photoDTO{URL: p.URL, StorageID: p.StorageID})
	}

	logs := make([]logDTO, 0, len(aggregate.Logs()))
	for _, l := range aggregate.Logs() {
		logs = append(logs, logDTO{Kind: l.Kind, ItemRef: l.ItemRef, Actor: l.Actor, Message: l.Message, At: l.At})
	}

	var delivery *deliveryDTO
	if d := aggregate.Delivery(); d != nil {
		delivery = &deliveryDTO{
			TripID:         d.TripID,
			StopID:         d.StopID,
			DriverMemberID: d.DriverMemberID,
			DriverName:     d.DriverName,
			StopSequence:   d.StopSequence,
			ETA:            d.ETA,
		}
	}

	itemsRaw, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}
	toteIDsRaw, err := json.Marshal(toteIDs)
	if err != nil {
		return OrderDTO{}, err
	}
	deliveryRaw, err := json.Marshal(delivery)
	if err != nil {
		return OrderDTO{}, err
	}
	photosRaw, err := json.Marshal(photos)
	if err != nil {
		return OrderDTO{}, err
	}
	logsRaw, err := json.Marshal(logs)
	if err != nil {
		return OrderDTO{}, err
	}

	var pickerID, packerID *uuid.UUID
	if id := aggregate.Picker(); id != nil {
		raw := id.Bytes()
		pickerID = &raw
	}
	if id := aggregate.Packer(); id != nil {
		raw := id.Bytes()
		packerID = &raw
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		ExternalRef:  aggregate.ExternalRef(),
		Number:       aggregate.Number(),
		CustomerName: aggregate.CustomerName(),
		Status:       int(aggregate.Status()),
		PickerID:     pickerID,
		PackerID:     packerID,
		LineItems:    itemsRaw,
		ToteIDs:      toteIDsRaw,
		Delivery:     deliveryRaw,
		Photos:       photosRaw,
		Logs:         logsRaw,
		BoxCount:     aggregate.BoxCount(),
		AdminNote:    aggregate.AdminNote(),
		Approved:     aggregate.Approved(),
		Version:      aggregate.Version(),
	}, nil
}

func lineItemFromDomain(li *order.LineItem) lineItemDTO {
	return lineItemDTO{
		Ref:          li.Ref(),
		ProductID:    li.ProductID(),
		VariantID:    li.VariantID(),
		Name:         li.Name(),
		SKU:          li.SKU(),
		Quantity:     li.Quantity(),
		Pick:         stateFromDomain(li.PickState()),
		Pack:         stateFromDomain(li.PackState()),
		Picked:       li.Picked(),
		Packed:       li.Packed(),
		Flags:        li.Flags(),
		Refund:       li.Refunded(),
		Subbed:       li.Substituted(),
		SubConfirmed: li.SubstitutionConfirmed(),
		Approved:     li.Approved(),
		AdminNote:    li.AdminNote(),
		CustomerNote: li.CustomerNote(),
	}
}

func stateFromDomain(s order.ItemState) itemStateDTO {
	return itemStateDTO{
		Verified:   bucketFromDomain(s.Verified),
		Damaged:    bucketFromDomain(s.Damaged),
		OutOfStock: bucketFromDomain(s.OutOfStock),
	}
}

func bucketFromDomain(b order.Bucket) bucketDTO {
	dto := bucketDTO{Quantity: b.Quantity}
	if b.Subbed != nil {
		dto.Subbed = &substituteDTO{ProductID: b.Subbed.ProductID, VariantID: b.Subbed.VariantID}
	}
	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var itemDTOs []lineItemDTO
	if err = json.Unmarshal(dto.LineItems, &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var rawToteIDs []uuid.UUID
	if err = json.Unmarshal(dto.ToteIDs, &rawToteIDs); err != nil {
		return nil, err
	}

	toteIDs := make([]kernel.UUID, 0, len(rawToteIDs))
	for _, raw := range rawToteIDs {
		toteID, toteErr := kernel.UUIDFromBytes(raw[:])
		if toteErr != nil {
			return nil, toteErr
		}
		toteIDs = append(toteIDs, toteID)
	}

	var delivery *order.Delivery
	if len(dto.Delivery) > 0 {
		var d *deliveryDTO
		if err = json.Unmarshal(dto.Delivery, &d); err != nil {
			return nil, err
		}
		if d != nil {
			delivery = &order.Delivery{
				TripID:         d.TripID,
				StopID:         d.StopID,
				DriverMemberID: d.DriverMemberID,
				DriverName:     d.DriverName,
				StopSequence:   d.StopSequence,
				ETA:            d.ETA,
			}
		}
	}

	var photoDTOs []photoDTO
	if err = json.Unmarshal(dto.Photos, &photoDTOs); err != nil {
		return nil, err
	}
	photos := make([]order.Photo, 0, len(photoDTOs))
	for _, p := range photoDTOs {
		photos = append(photos, order.Photo{URL: p.URL, StorageID: p.StorageID})
	}

	var logDTOs []logDTO
	if err = json.Unmarshal(dto.Logs, &logDTOs); err != nil {
		return nil, err
	}
	logs := make([]order.LogEntry, 0, len(logDTOs))
	for _, l := range logDTOs {
		logs = append(logs, order.LogEntry{Kind: l.Kind, ItemRef: l.ItemRef, Actor: l.Actor, Message: l.Message, At: l.At})
	}

	var pickerID, packerID *kernel.UUID
	if dto.PickerID != nil {
		pID, pickerErr := kernel.UUIDFromBytes((*dto.PickerID)[:])
		if pickerErr != nil {
			return nil, pickerErr
		}
		pickerID = &pID
	}
	if dto.PackerID != nil {
		pID, packerErr := kernel.UUIDFromBytes((*dto.PackerID)[:])
		if packerErr != nil {
			return nil, packerErr
		}
		packerID = &pID
	}

	return order.RestoreOrder(
		id,
		dto.ExternalRef, dto.Number, dto.CustomerName,
		order.Status(dto.Status),
		pickerID, packerID,
		items,
		toteIDs,
		delivery,
		photos,
		dto.BoxCount,
		dto.AdminNote,
		dto.Approved,
		logs,
		dto.Version,
	)
}

func lineItemToDomain(dto lineItemDTO) (*order.LineItem, error) {
	return order.RestoreLineItem(
		dto.Ref, dto.ProductID, dto.VariantID, dto.Name, dto.SKU,
		dto.Quantity,
		stateToDomain(dto.Pick), stateToDomain(dto.Pack),
		dto.Picked, dto.Packed,
		dto.Flags,
		dto.Refund, dto.Subbed, dto.SubConfirmed, dto.Approved,
		dto.AdminNote, dto.CustomerNote,
	)
}

func stateToDomain(dto itemStateDTO) order.ItemState {
	return order.ItemState{
		Verified:   bucketToDomain(dto.Verified),
		Damaged:    bucketToDomain(dto.Damaged),
		OutOfStock: bucketToDomain(dto.OutOfStock),
	}
}

func bucketToDomain(dto bucketDTO) order.Bucket {
	b := order.Bucket{Quantity: dto.Quantity}
	if dto.Subbed != nil {
		b.Subbed = &order.Substitute{ProductID: dto.Subbed.ProductID, VariantID: dto.Subbed.VariantID}
	}
	return b
}
