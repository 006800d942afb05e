package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
// Notifications are written inside the same transaction as the state change
// that produced them.
type NotificationRepository interface {
	// Add persists a new notification to storage.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// GetAllForUser retrieves all notifications addressed to the given user,
	// newest first.
	GetAllForUser(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error)

	// Update persists changes to an existing notification, such as marking
	// it read.
	Update(ctx context.Context, aggregate *notification.Notification) error
}
