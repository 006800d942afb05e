package warehouserepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/warehouse"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWarehouseRepository creates a new GORM warehouse repository.
func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new warehouse to the database.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
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

// Update saves an existing warehouse to the database.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WarehouseDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a warehouse by ID.
func (r *GormWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	return r.getOne(ctx, r.db, id)
}

// GetForUpdate retrieves a warehouse by ID, locking its row until the current
// transaction completes. Used by workflows that adjust the current load.
func (r *GormWarehouseRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	return r.getOne(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetAll retrieves every warehouse ordered by code, active or not.
func (r *GormWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	warehouses := make([]*warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}

	return warehouses, nil
}

// Delete removes a warehouse from the database.
func (r *GormWarehouseRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&WarehouseDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("warehouse", id.String())
	}

	return nil
}

func (r *GormWarehouseRepository) getOne(
	ctx context.Context, db *gorm.DB, id kernel.UUID,
) (*warehouse.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
