package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPickBoardQueryHandler reads the pick board from the orders table.
type GetPickBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetPickBoardQueryHandler creates a handler for pick board queries.
func NewGetPickBoardQueryHandler(db *gorm.DB) GetPickBoardQueryHandler {
	return GetPickBoardQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest number first so the
// board surfaces the longest waiting work at the top.
func (h GetPickBoardQueryHandler) Handle(
	ctx context.Context,
	query GetPickBoardQuery,
) ([]BoardOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
	`
	args := []any{int(order.New), int(order.Picking)}

	if pickerID := query.PickerID(); pickerID != nil {
		sql += ` AND picker_id = ?`
		args = append(args, pickerID.Bytes())
	}
	sql += ` ORDER BY number`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBoardRows(rows)
}
