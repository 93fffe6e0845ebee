package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderLogQueryHandler reads an order's audit trail from its log document.
type GetOrderLogQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderLogQueryHandler creates a handler for audit log queries.
func NewGetOrderLogQueryHandler(db *gorm.DB) GetOrderLogQueryHandler {
	return GetOrderLogQueryHandler{db: db}
}

// Handle executes the query and returns the entries oldest first.
func (h GetOrderLogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLogQuery,
) ([]GetOrderLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var raw []byte
	err := h.db.WithContext(ctx).Raw(`
		SELECT logs
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	var entries []struct {
		Kind    string    `json:"kind"`
		ItemRef string    `json:"itemRef"`
		Actor   string    `json:"actor"`
		Message string    `json:"message"`
		At      time.Time `json:"at"`
	}
	if err = json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	log := make([]GetOrderLogQueryResponse, 0, len(entries))
	for _, e := range entries {
		log = append(log, GetOrderLogQueryResponse{
			Kind:    e.Kind,
			ItemRef: e.ItemRef,
			Actor:   e.Actor,
			Message: e.Message,
			At:      e.At,
		})
	}

	return log, nil
}
