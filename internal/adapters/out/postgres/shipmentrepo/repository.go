package shipmentrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database together with its history entries.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database.
// The shipment row is rewritten; history rows are append-only, so entries
// already persisted are left untouched and only new ones are inserted.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("History", "id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.History) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.History).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID with its history ordered oldest first.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getOne(ctx, r.db, "id = ?", id.Bytes())
}

// GetForUpdate retrieves a shipment by ID, locking its row until the current
// transaction completes.
func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.Clauses(clause.Locking{Strength: "UPDATE"})
	return r.getOne(ctx, db, "id = ?", id.Bytes())
}

// GetByTrackingNumber retrieves a shipment by its public tracking number.
func (r *GormShipmentRepository) GetByTrackingNumber(
	ctx context.Context, trackingNumber string,
) (*shipment.Shipment, error) {
	return r.getOne(ctx, r.db, "tracking_number = ?", trackingNumber)
}

// GetFirstAwaitingDriver retrieves the oldest shipment sitting in a warehouse
// with no driver assigned.
func (r *GormShipmentRepository) GetFirstAwaitingDriver(ctx context.Context) (*shipment.Shipment, error) {
	db := r.db.Order("created_at, id")
	return r.getOne(ctx, db, "status = ? AND driver_id IS NULL", shipment.InWarehouse.String())
}

// CountInWarehouse returns the number of shipments currently stored in the
// given warehouse.
func (r *GormShipmentRepository) CountInWarehouse(ctx context.Context, warehouseID kernel.UUID) (int, error) {
	if err := warehouseID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("warehouse_id = ? AND status = ?", warehouseID.Bytes(), shipment.InWarehouse.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountActiveForDriver returns the number of the driver's shipments that
// have not reached a terminal status.
func (r *GormShipmentRepository) CountActiveForDriver(ctx context.Context, driverID kernel.UUID) (int, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("driver_id = ? AND status NOT IN (?, ?, ?)",
			driverID.Bytes(),
			shipment.Delivered.String(),
			shipment.Returned.String(),
			shipment.PartialReturned.String(),
		).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountUndeliveredInWarehouse returns the number of shipments bound to the
// given warehouse in any status other than delivered.
func (r *GormShipmentRepository) CountUndeliveredInWarehouse(
	ctx context.Context, warehouseID kernel.UUID,
) (int, error) {
	if err := warehouseID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("warehouse_id = ? AND status <> ?", warehouseID.Bytes(), shipment.Delivered.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// ExistsTrackingNumberOrBarcode reports whether any shipment already carries
// the given tracking number or barcode.
func (r *GormShipmentRepository) ExistsTrackingNumberOrBarcode(
	ctx context.Context, trackingNumber, barcode string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("tracking_number = ? OR barcode = ?", trackingNumber, barcode).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a shipment and its history rows.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", id.Bytes()).
		Delete(&HistoryEntryDTO{}).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&ShipmentDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}

	return nil
}

func (r *GormShipmentRepository) getOne(
	ctx context.Context, db *gorm.DB, condition string, args ...any,
) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("recorded_at, id")
		}).
		First(&dto, append([]any{condition}, args...)...).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", args[0])
		}
		return nil, err
	}

	return toDomain(dto)
}
