package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/driverrepo"
	"freight/internal/adapters/out/postgres/ledgerrepo"
	"freight/internal/adapters/out/postgres/notificationrepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/adapters/out/postgres/warehouserepo"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ledger"
	"freight/internal/core/domain/model/notification"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/warehouse"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection and
// runs migrations for every table the unit of work touches.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.HistoryEntryDTO{},
		&warehouserepo.WarehouseDTO{},
		&driverrepo.DriverDTO{},
		&notificationrepo.NotificationDTO{},
		&ledgerrepo.TransactionDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE shipments, shipment_history, warehouses, drivers, notifications, transactions",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit of
// work instances that each expose all repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.WarehouseRepository())
	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow1.NotificationRepository())
	suite.NotNil(uow1.TransactionRepository())
	suite.NotNil(uow2.ShipmentRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	retrieved, err := uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())
}

// TestUnitOfWork_DeliveryWorkflow walks a shipment from creation to delivery
// within transactions: warehouse receipt adjusts the load, delivery books the
// driver's commission, releases the driver, and notifies the merchant.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryWorkflow() {
	ctx := context.Background()
	now := time.Now().UTC()

	testShipment := createTestShipment()
	testWarehouse := createTestWarehouse()
	testDriver := createTestDriver()

	// Seed the aggregates.
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(setupUow.WarehouseRepository().Add(ctx, testWarehouse))
	suite.Require().NoError(setupUow.DriverRepository().Add(ctx, testDriver))

	// Receive the shipment into the warehouse.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testShipment.AssignWarehouse(testWarehouse.ID()))
	suite.Require().NoError(testShipment.TransitionTo(shipment.InReceipt, "", nil, nil, now))
	suite.Require().NoError(testShipment.TransitionTo(shipment.InWarehouse, "", nil, nil, now))
	suite.Require().NoError(testWarehouse.AdjustLoad(1))

	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, testShipment))
	suite.Require().NoError(uow.WarehouseRepository().Update(ctx, testWarehouse))
	suite.Require().NoError(uow.Commit(ctx))

	// Hand to the driver and deliver; settlement happens in one transaction.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testShipment.AssignDriver(testDriver.ID()))
	testDriver.MarkBusy()
	suite.Require().NoError(testShipment.TransitionTo(shipment.WithDriver, "", nil, nil, now))
	suite.Require().NoError(testShipment.TransitionTo(shipment.Delivered, "Left at reception", nil, nil, now))
	suite.Require().NoError(testWarehouse.AdjustLoad(-1))
	testDriver.MarkAvailable()

	commission, err := testShipment.ShippingCost().MultiplyRate(testDriver.CommissionRate())
	suite.Require().NoError(err)

	shipmentID := testShipment.ID()
	entry, err := ledger.NewTransaction(
		kernel.NewUUID(),
		testDriver.ID(),
		&shipmentID,
		ledger.TransactionCommission,
		commission,
		"Delivery commission",
		now,
	)
	suite.Require().NoError(err)

	note, err := notification.NewNotification(
		kernel.NewUUID(),
		testShipment.MerchantID(),
		"Shipment status updated",
		"Shipment delivered",
		notification.TypeShipmentStatus,
		"",
		now,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, testShipment))
	suite.Require().NoError(uow.WarehouseRepository().Update(ctx, testWarehouse))
	suite.Require().NoError(uow.DriverRepository().Update(ctx, testDriver))
	suite.Require().NoError(uow.TransactionRepository().Add(ctx, entry))
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, note))
	suite.Require().NoError(uow.Commit(ctx))

	// Verify final state with a fresh unit of work.
	finalUow := suite.factory.Create()

	finalShipment, err := finalUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, finalShipment.Status())
	suite.NotNil(finalShipment.DeliveredAt())
	suite.Len(finalShipment.History(), 5)

	finalWarehouse, err := finalUow.WarehouseRepository().Get(ctx, testWarehouse.ID())
	suite.Require().NoError(err)
	suite.Equal(0, finalWarehouse.CurrentLoad())

	finalDriver, err := finalUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(finalDriver.IsAvailable())

	entries, err := finalUow.TransactionRepository().GetAllForUser(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.InDelta(commission.Amount(), entries[0].Amount().Amount(), 0.001)

	notes, err := finalUow.NotificationRepository().GetAllForUser(ctx, testShipment.MerchantID())
	suite.Require().NoError(err)
	suite.Require().Len(notes, 1)
	suite.Equal(notification.TypeShipmentStatus, notes[0].NotificationType())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()
	testDriver := createTestDriver()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	_, err = uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().Error(err, "Shipment should not exist after rollback")

	_, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	shipment1 := createTestShipment()
	shipment2 := createTestShipment()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ShipmentRepository().Add(ctx, shipment1)
	suite.Require().NoError(err)

	err = uow2.ShipmentRepository().Add(ctx, shipment2)
	suite.Require().NoError(err)

	_, err = uow1.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "UOW1 should see shipment1")

	_, err = uow1.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "UOW1 should not see shipment2")

	_, err = uow2.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().NoError(err, "UOW2 should see shipment2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "Shipment1 should persist after commit")

	_, err = newUow.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "Shipment2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testWarehouse := createTestWarehouse()

	err := uow.WarehouseRepository().Add(ctx, testWarehouse)
	suite.Require().NoError(err)

	retrieved, err := uow.WarehouseRepository().Get(ctx, testWarehouse.ID())
	suite.Require().NoError(err)
	suite.Equal(testWarehouse.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.WarehouseRepository().Get(ctx, testWarehouse.ID())
	suite.Require().NoError(err)
	suite.Equal(testWarehouse.ID(), retrieved.ID())
}

// createTestShipment creates a valid shipment for testing purposes.
func createTestShipment() *shipment.Shipment {
	customer, _ := shipment.NewCustomer("Dana Wu", "+14155550102", "19 Pier Street", "Alameda")
	declaredValue, _ := kernel.NewMoney(120)
	shippingCost, _ := kernel.NewMoney(20)
	codAmount, _ := kernel.NewMoney(0)

	nano := time.Now().UnixNano()
	testShipment, _ := shipment.NewShipment(
		kernel.NewUUID(),
		fmt.Sprintf("FRT-uow-%d", nano),
		fmt.Sprintf("BCD-uow-%d", nano),
		kernel.NewUUID(),
		customer,
		"Boxed samples",
		declaredValue,
		shippingCost,
		codAmount,
		1.8,
		"20x20x10",
		time.Now().UTC(),
	)
	return testShipment
}

// createTestWarehouse creates a valid warehouse for testing purposes.
func createTestWarehouse() *warehouse.Warehouse {
	location, _ := kernel.NewGeoPoint(37.77, -122.42)
	testWarehouse, _ := warehouse.NewWarehouse(
		kernel.NewUUID(),
		fmt.Sprintf("SFO-%d", time.Now().UnixNano()%100000),
		"Bay Hub",
		10,
		location,
	)
	return testWarehouse
}

// createTestDriver creates a valid driver for testing purposes.
func createTestDriver() *driver.Driver {
	testDriver, _ := driver.NewDriver(
		kernel.NewUUID(),
		"Test Driver",
		fmt.Sprintf("driver-%d@example.com", time.Now().UnixNano()),
		"+14155550103",
		"CA-48291",
		"DL-771204",
		0.15,
	)
	return testDriver
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
