// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and bypass the
// domain aggregates, reading the storage rows directly.
package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// GetDashboardStatsQuery retrieves per-status order counts for the admin
// dashboard.
//
// Example:
//
//	query := NewGetDashboardStatsQuery()
//	handler := NewGetDashboardStatsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get dashboard stats: %w", err)
//	}
//
//	fmt.Printf("%d orders being picked\n", stats.Picking)
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query to retrieve dashboard statistics.
// This is a parameterless query counting orders in every status.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse represents the per-status order counts.
type GetDashboardStatsQueryResponse struct {
	New       int
	Picking   int
	Picked    int
	Packing   int
	Packed    int
	Delivered int
	Total     int
}
