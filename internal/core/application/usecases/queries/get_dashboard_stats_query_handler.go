package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler counts orders per status straight from the
// orders table.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard statistics.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the query and returns counts for every order status.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	var stats GetDashboardStatsQueryResponse
	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}

		switch order.Status(status) {
		case order.New:
			stats.New = count
		case order.Picking:
			stats.Picking = count
		case order.Picked:
			stats.Picked = count
		case order.Packing:
			stats.Packing = count
		case order.Packed:
			stats.Packed = count
		case order.Delivered:
			stats.Delivered = count
		}
		stats.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return stats, nil
}
