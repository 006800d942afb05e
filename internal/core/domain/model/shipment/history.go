package shipment

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
)

// ErrHistoryEntryIsNotConstructed indicates that a HistoryEntry was not
// created through NewHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry")

// HistoryEntry is an immutable audit record of a single status change.
// Entries are only ever appended to a shipment's history; they are never
// updated or removed. Each entry carries its own identifier so persistence
// can append idempotently.
type HistoryEntry struct {
	id         kernel.UUID
	status     Status
	notes      string
	location   *kernel.GeoPoint
	actorID    *kernel.UUID
	recordedAt time.Time

	guard kernel.ConstructorGuard
}

// NewHistoryEntry creates a history entry for the given status change.
// Notes, location, and actor are optional context supplied by the caller.
func NewHistoryEntry(
	id kernel.UUID,
	status Status,
	notes string,
	location *kernel.GeoPoint,
	actorID *kernel.UUID,
	recordedAt time.Time,
) (HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return HistoryEntry{}, err
		}
	}
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return HistoryEntry{}, err
		}
	}

	return HistoryEntry{
		id:         id,
		status:     status,
		notes:      notes,
		location:   location,
		actorID:    actorID,
		recordedAt: recordedAt,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// ID returns the entry's unique identifier.
func (e HistoryEntry) ID() kernel.UUID {
	return e.id
}

// Status returns the shipment status recorded by this entry.
func (e HistoryEntry) Status() Status {
	return e.status
}

// Notes returns the free-text notes attached to the status change.
func (e HistoryEntry) Notes() string {
	return e.notes
}

// Location returns where the status change happened, or nil when not
// reported.
func (e HistoryEntry) Location() *kernel.GeoPoint {
	return e.location
}

// ActorID returns the authenticated actor that triggered the change, or nil
// for system-initiated changes.
func (e HistoryEntry) ActorID() *kernel.UUID {
	return e.actorID
}

// RecordedAt returns when the status change was recorded.
func (e HistoryEntry) RecordedAt() time.Time {
	return e.recordedAt
}

// Validate ensures the entry was created through NewHistoryEntry.
func (e HistoryEntry) Validate() error {
	return e.guard.Validate(ErrHistoryEntryIsNotConstructed)
}
