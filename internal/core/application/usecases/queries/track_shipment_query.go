// Package queries contains read operations over the freight data.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return flat read models, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"freight/internal/pkg/guard"
)

var (
	ErrTrackShipmentQueryIsNotConstructed = errors.New(
		"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// TrackShipmentQuery retrieves the public tracking view of a shipment by its
// tracking number: current status, recipient city and the full status history.
//
// Example:
//
//	query, _ := NewTrackShipmentQuery("FRT17234567890001234")
//	handler := NewTrackShipmentQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown tracking number
//	}
type TrackShipmentQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a query for the given tracking number.
func NewTrackShipmentQuery(trackingNumber string) (TrackShipmentQuery, error) {
	if trackingNumber == "" {
		return TrackShipmentQuery{}, ErrTrackingNumberIsRequired
	}

	return TrackShipmentQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q TrackShipmentQuery) TrackingNumber() string {
	return q.trackingNumber
}

// TrackShipmentQueryResponse is the public tracking view of one shipment.
type TrackShipmentQueryResponse struct {
	TrackingNumber string
	Status         string
	CustomerCity   string
	Description    string
	CreatedAt      time.Time
	PickedUpAt     *time.Time
	DeliveredAt    *time.Time
	History        []TrackShipmentHistoryEntry
}

// TrackShipmentHistoryEntry is one recorded status change, oldest first.
type TrackShipmentHistoryEntry struct {
	Status     string
	Notes      string
	Latitude   *float64
	Longitude  *float64
	RecordedAt time.Time
}
