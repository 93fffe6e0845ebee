package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// notificationFeedLimit caps the feed at the most recent entries; older
// records stay in the table for auditing but are not served.
const notificationFeedLimit = 100

// GetNotificationsQueryHandler reads the notification feed straight from
// the notifications table.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification feed queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query and returns the entries newest first. A record
// with no addressed roles is a broadcast and shows up in every feed.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		ID          string
		Kind        string
		Message     string
		OrderNumber string
		ProductID   string
		VariantID   string
		CreatedAt   time.Time
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, kind, message, order_number, product_id, variant_id, created_at
		FROM notifications
		WHERE roles = '' OR ? = ANY(string_to_array(roles, ','))
		ORDER BY created_at DESC
		LIMIT ?
	`, query.Role().String(), notificationFeedLimit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	feed := make([]GetNotificationsQueryResponse, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromString(r.ID)
		if err != nil {
			return nil, err
		}
		feed = append(feed, GetNotificationsQueryResponse{
			ID:          id,
			Kind:        r.Kind,
			Message:     r.Message,
			OrderNumber: r.OrderNumber,
			ProductID:   r.ProductID,
			VariantID:   r.VariantID,
			CreatedAt:   r.CreatedAt,
		})
	}

	return feed, nil
}
