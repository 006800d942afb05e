package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackShipmentQueryHandler resolves tracking numbers against the database.
// Reading goes straight to the tables; the aggregate is never rebuilt.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// Returns errs.ErrObjectNotFound when no shipment carries the tracking number.
// History entries are ordered oldest first.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	var resp TrackShipmentQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_number,
			status,
			customer_city,
			description,
			created_at,
			picked_up_at,
			delivered_at
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber()).Row()

	err := row.Scan(
		&resp.TrackingNumber,
		&resp.Status,
		&resp.CustomerCity,
		&resp.Description,
		&resp.CreatedAt,
		&resp.PickedUpAt,
		&resp.DeliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackShipmentQueryResponse{}, errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
	}
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	history, err := h.loadHistory(ctx, query.TrackingNumber())
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	resp.History = history

	return resp, nil
}

func (h TrackShipmentQueryHandler) loadHistory(
	ctx context.Context, trackingNumber string,
) ([]TrackShipmentHistoryEntry, error) {
	entries := make([]TrackShipmentHistoryEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.status,
			h.notes,
			h.latitude,
			h.longitude,
			h.recorded_at
		FROM shipment_history h
		JOIN shipments s ON s.id = h.shipment_id
		WHERE s.tracking_number = ?
		ORDER BY h.recorded_at, h.id
	`, trackingNumber).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TrackShipmentHistoryEntry

		err = rows.Scan(
			&entry.Status,
			&entry.Notes,
			&entry.Latitude,
			&entry.Longitude,
			&entry.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
