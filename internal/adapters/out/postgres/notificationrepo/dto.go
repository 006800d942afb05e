// Package notificationrepo provides data transfer objects and mapping functions for notification persistence.
package notificationrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Link      string    `gorm:"type:varchar(255)"`
	Read      bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for notification entities.
// Overrides GORM's default naming convention to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		Title:     aggregate.Title(),
		Message:   aggregate.Message(),
		Type:      aggregate.NotificationType().String(),
		Link:      aggregate.Link(),
		Read:      aggregate.IsRead(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	ntype, err := notification.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		userID,
		dto.Title,
		dto.Message,
		ntype,
		dto.Link,
		dto.Read,
		dto.CreatedAt,
	)
}
