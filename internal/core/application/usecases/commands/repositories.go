// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// TransactionRepoFactory provides access to the ledger repository within a transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	// Used when commands only modify shipment aggregates.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// WarehouseUoW manages transactions for warehouse-only operations.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// DriverShipmentUoW manages transactions across driver and shipment
	// aggregates. Used by driver removal, which checks the driver's open
	// shipments before deleting the row.
	DriverShipmentUoW interface {
		TxManager
		DriverRepoFactory
		ShipmentRepoFactory
	}

	// DriverShipmentUoWFactory creates new driver/shipment unit of work instances.
	DriverShipmentUoWFactory interface {
		Create() DriverShipmentUoW
	}

	// ShipmentWarehouseUoW manages transactions across shipment and warehouse aggregates.
	// Used for commands that place shipments into warehouses or reconcile loads.
	ShipmentWarehouseUoW interface {
		TxManager
		ShipmentRepoFactory
		WarehouseRepoFactory
	}

	// ShipmentWarehouseUoWFactory creates new shipment/warehouse unit of work instances.
	ShipmentWarehouseUoWFactory interface {
		Create() ShipmentWarehouseUoW
	}

	// DispatchUoW manages transactions across shipment, driver and warehouse aggregates.
	// Used by the driver assignment workflow.
	DispatchUoW interface {
		TxManager
		ShipmentRepoFactory
		DriverRepoFactory
		WarehouseRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// TransitionUoW manages transactions across every aggregate a status
	// transition can touch: the shipment itself, its warehouse load, the
	// assigned driver, the merchant notification and the commission ledger.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipmentRepo := uow.ShipmentRepository()
	//   warehouseRepo := uow.WarehouseRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TransitionUoW interface {
		TxManager
		ShipmentRepoFactory
		WarehouseRepoFactory
		DriverRepoFactory
		NotificationRepoFactory
		TransactionRepoFactory
	}

	// TransitionUoWFactory creates new transition unit of work instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}
)
