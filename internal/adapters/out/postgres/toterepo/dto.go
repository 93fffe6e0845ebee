// Package toterepo provides data transfer objects and mapping functions for tote persistence.
package toterepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tote"

	"github.com/google/uuid"
)

// ToteDTO represents the database structure for persisting tote entities.
// The barcode carries a unique index because scan flows look totes up by it.
type ToteDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Barcode string     `gorm:"uniqueIndex"`
	Status  int        `gorm:"index"`
	OrderID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for tote entities.
func (ToteDTO) TableName() string {
	return "totes"
}

// fromDomain converts a tote domain entity to its database representation.
func fromDomain(t *tote.Tote) ToteDTO {
	var orderID *uuid.UUID
	if id := t.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return ToteDTO{
		ID:      t.ID().Bytes(),
		Barcode: t.Barcode(),
		Status:  int(t.Status()),
		OrderID: orderID,
	}
}

// toDomain converts a database DTO to a tote domain entity.
func toDomain(dto ToteDTO) (*tote.Tote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return tote.RestoreTote(id, dto.Barcode, tote.Status(dto.Status), orderID)
}
