// Package notification provides the Notification record created as a side
// effect of shipment lifecycle transitions. Notifications are a best-effort
// side channel informing a user (typically the merchant) about their
// shipment; once created they are never changed except to be marked read.
package notification

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed indicates that a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Type classifies what a notification is about.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeShipmentStatus is sent to a merchant when their shipment's status
	// changes.
	TypeShipmentStatus

	// TypeSystem covers operational announcements.
	TypeSystem
)

// String returns the wire representation of the type.
func (t Type) String() string {
	switch t {
	case TypeShipmentStatus:
		return "SHIPMENT_STATUS"
	case TypeSystem:
		return "SYSTEM"
	default:
		return "UNKNOWN"
	}
}

// Validate checks the type is a member of the enum.
func (t Type) Validate() error {
	if t != TypeShipmentStatus && t != TypeSystem {
		return errs.NewValueIsInvalidErrorWithCause("notification type", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

// TypeFromString parses the wire representation (e.g. "SHIPMENT_STATUS") into
// a Type. Returns an error for unrecognized values.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "SHIPMENT_STATUS":
		return TypeShipmentStatus, nil
	case "SYSTEM":
		return TypeSystem, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("notification type", fmt.Errorf("%q is not a valid type", s))
	}
}

// Notification is an append-only record informing a user of an event.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	title     string
	message   string
	ntype     Type
	link      string
	read      bool
	createdAt time.Time

	guard kernel.ConstructorGuard
}

// NewNotification creates an unread Notification. Title and message are
// required; link is optional.
func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	title, message string,
	ntype Type,
	link string,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), ntype.Validate()); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("notification title")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("notification message")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		title:     title,
		message:   message,
		ntype:     ntype,
		link:      link,
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	title, message string,
	ntype Type,
	link string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, userID, title, message, ntype, link, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	return n, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID returns the recipient user's identifier.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// Title returns the short headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the notification body.
func (n *Notification) Message() string {
	return n.message
}

// NotificationType returns the classification of this notification.
func (n *Notification) NotificationType() Type {
	return n.ntype
}

// Link returns an optional deep link, or "".
func (n *Notification) Link() string {
	return n.link
}

// IsRead reports whether the recipient has seen the notification.
func (n *Notification) IsRead() bool {
	return n.read
}

// CreatedAt returns the creation time.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flags the notification as seen. This is the only permitted
// mutation.
func (n *Notification) MarkRead() {
	n.read = true
}
