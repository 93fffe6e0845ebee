// Package operatorrepo provides data transfer objects and mapping functions for operator persistence.
package operatorrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"

	"github.com/google/uuid"
)

// OperatorDTO represents the database structure for persisting warehouse staff.
type OperatorDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string
	Role              int `gorm:"index"`
	Active            bool
	LineItemsAssigned int
}

// TableName specifies the database table name for operator entities.
func (OperatorDTO) TableName() string {
	return "operators"
}

// fromDomain converts an operator domain entity to its database representation.
func fromDomain(op *operator.Operator) OperatorDTO {
	return OperatorDTO{
		ID:                op.ID().Bytes(),
		Name:              op.Name(),
		Role:              int(op.Role()),
		Active:            op.Active(),
		LineItemsAssigned: op.LineItemsAssigned(),
	}
}

// toDomain converts a database DTO to an operator domain entity.
func toDomain(dto OperatorDTO) (*operator.Operator, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return operator.RestoreOperator(id, dto.Name, operator.Role(dto.Role), dto.Active, dto.LineItemsAssigned)
}
