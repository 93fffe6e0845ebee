package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOperatorsQueryHandler reads the staff roster from the operators table.
type GetAllOperatorsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOperatorsQueryHandler creates a handler for roster queries.
func NewGetAllOperatorsQueryHandler(db *gorm.DB) GetAllOperatorsQueryHandler {
	return GetAllOperatorsQueryHandler{db: db}
}

// Handle executes the query. Results come back sorted by name for stable
// display.
func (h GetAllOperatorsQueryHandler) Handle(
	ctx context.Context,
	query GetAllOperatorsQuery,
) ([]GetAllOperatorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			role,
			active,
			line_items_assigned
		FROM operators
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	operators := make([]GetAllOperatorsQueryResponse, 0)
	for rows.Next() {
		var (
			id     uuid.UUID
			name   string
			role   int
			active bool
			load   int
		)

		if err = rows.Scan(&id, &name, &role, &active, &load); err != nil {
			return nil, err
		}

		operatorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		operators = append(operators, GetAllOperatorsQueryResponse{
			ID:                operatorID,
			Name:              name,
			Role:              operator.Role(role).String(),
			Active:            active,
			LineItemsAssigned: load,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return operators, nil
}
