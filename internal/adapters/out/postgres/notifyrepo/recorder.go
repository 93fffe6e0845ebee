// Package notifyrepo records every staff notification before it is
// forwarded to the chat channel, so operators can audit what was sent
// even when the webhook was down.
package notifyrepo

import (
	"context"
	"strings"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents the database structure for persisted
// notification records.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind        string    `gorm:"index"`
	Message     string
	Roles       string
	OrderNumber string `gorm:"index"`
	ProductID   string
	VariantID   string
	CreatedAt   time.Time
}

// TableName specifies the database table name for notification records.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// RecordingNotifier persists each notification and then delegates to the
// wrapped notifier. A delivery failure is returned after the record is
// stored; a storage failure skips delivery so the record and the channel
// never disagree about what happened first.
type RecordingNotifier struct {
	db   *gorm.DB
	next ports.Notifier
}

// NewRecordingNotifier wraps the given notifier with persistence.
func NewRecordingNotifier(db *gorm.DB, next ports.Notifier) *RecordingNotifier {
	return &RecordingNotifier{
		db:   db,
		next: next,
	}
}

// Notify stores the notification and forwards it to the wrapped notifier.
func (n *RecordingNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	dto := NotificationDTO{
		ID:          uuid.New(),
		Kind:        notification.Kind,
		Message:     notification.Message,
		Roles:       strings.Join(notification.Roles, ","),
		OrderNumber: notification.OrderNumber,
		ProductID:   notification.ProductID,
		VariantID:   notification.VariantID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := n.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return n.next.Notify(ctx, notification)
}
