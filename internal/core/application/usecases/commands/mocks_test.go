package commands_test

import (
	"context"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ledger"
	"freight/internal/core/domain/model/notification"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/warehouse"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingNumber(
	ctx context.Context, trackingNumber string,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetFirstAwaitingDriver(ctx context.Context) (*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) CountInWarehouse(ctx context.Context, warehouseID kernel.UUID) (int, error) {
	args := m.Called(ctx, warehouseID)
	return args.Int(0), args.Error(1)
}

func (m *MockShipmentRepository) CountActiveForDriver(ctx context.Context, driverID kernel.UUID) (int, error) {
	args := m.Called(ctx, driverID)
	return args.Int(0), args.Error(1)
}

func (m *MockShipmentRepository) CountUndeliveredInWarehouse(
	ctx context.Context, warehouseID kernel.UUID,
) (int, error) {
	args := m.Called(ctx, warehouseID)
	return args.Int(0), args.Error(1)
}

func (m *MockShipmentRepository) ExistsTrackingNumberOrBarcode(
	ctx context.Context, trackingNumber, barcode string,
) (bool, error) {
	args := m.Called(ctx, trackingNumber, barcode)
	return args.Bool(0), args.Error(1)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetAllForUser(
	ctx context.Context, userID kernel.UUID,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) Add(ctx context.Context, t *ledger.Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetAllForUser(
	ctx context.Context, userID kernel.UUID,
) ([]*ledger.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Transaction), args.Error(1)
}

// MockUoW satisfies every command unit of work interface at once.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) TransactionRepository() ports.TransactionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransactionRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockDriverShipmentUoWFactory struct{ mock.Mock }

func (m *MockDriverShipmentUoWFactory) Create() commands.DriverShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverShipmentUoW)
}

type MockShipmentWarehouseUoWFactory struct{ mock.Mock }

func (m *MockShipmentWarehouseUoWFactory) Create() commands.ShipmentWarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentWarehouseUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}
