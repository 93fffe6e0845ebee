package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPackBoardQueryHandler reads the pack board from the orders table.
type GetPackBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetPackBoardQueryHandler creates a handler for pack board queries.
func NewGetPackBoardQueryHandler(db *gorm.DB) GetPackBoardQueryHandler {
	return GetPackBoardQueryHandler{db: db}
}

// Handle executes the query.
func (h GetPackBoardQueryHandler) Handle(
	ctx context.Context,
	query GetPackBoardQuery,
) ([]BoardOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_ref,
			number,
			customer_name,
			status,
			picker_id,
			packer_id,
			line_items
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY number
	`, int(order.Picked), int(order.Packing)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBoardRows(rows)
}
