package storage

import (
	"context"

	"github.com/kiran/bookbazaar/pkg/models"
)

// NotificationStore defines the seller notification feed. Notifications are
// created inside moderation and checkout batches; afterwards only the read
// flag ever changes.
type NotificationStore interface {
	// ListNotificationsBySeller retrieves a seller's most recent notifications.
	ListNotificationsBySeller(ctx context.Context, sellerID string, limit int32) ([]models.Notification, error)

	// MarkNotificationRead flips the read flag on a notification.
	MarkNotificationRead(ctx context.Context, notificationID string) error
}
