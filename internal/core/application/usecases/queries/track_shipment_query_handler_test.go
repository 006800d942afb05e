package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracker when tests only
// need to seed data.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

// newSeedShipment creates a shipment in status New with unique identifiers.
func newSeedShipment(s *suite.Suite) *shipment.Shipment {
	customer, err := shipment.NewCustomer("Priya Shah", "+14155550110", "7 Canal Walk", "Fresno")
	s.Require().NoError(err)

	declaredValue, err := kernel.NewMoney(300)
	s.Require().NoError(err)
	shippingCost, err := kernel.NewMoney(25)
	s.Require().NoError(err)
	codAmount, err := kernel.NewMoney(50)
	s.Require().NoError(err)

	nano := time.Now().UnixNano()
	seeded, err := shipment.NewShipment(
		kernel.NewUUID(),
		fmt.Sprintf("FRT-q-%d", nano),
		fmt.Sprintf("BCD-q-%d", nano),
		kernel.NewUUID(),
		customer,
		"Ceramic tiles",
		declaredValue,
		shippingCost,
		codAmount,
		12.5,
		"60x60x30",
		time.Now().UTC(),
	)
	s.Require().NoError(err)

	return seeded
}

// TrackShipmentQueryHandlerTestSuite exercises the tracking lookup against a
// real PostgreSQL database.
type TrackShipmentQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.TrackShipmentQueryHandler
}

func (suite *TrackShipmentQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.HistoryEntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewTrackShipmentQueryHandler(db)
}

func (suite *TrackShipmentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *TrackShipmentQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, shipment_history").Error
	suite.Require().NoError(err)
}

func (suite *TrackShipmentQueryHandlerTestSuite) TestHandle_KnownTrackingNumber_ReturnsShipmentWithHistory() {
	ctx := context.Background()

	seeded := newSeedShipment(&suite.Suite)
	location, err := kernel.NewGeoPoint(36.74, -119.78)
	suite.Require().NoError(err)
	suite.Require().NoError(seeded.TransitionTo(shipment.InReceipt, "Collected", &location, nil, time.Now().UTC()))

	repo := shipmentrepo.NewGormShipmentRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(ctx, seeded))

	query, err := queries.NewTrackShipmentQuery(seeded.TrackingNumber())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(seeded.TrackingNumber(), result.TrackingNumber)
	suite.Equal("IN_RECEIPT", result.Status)
	suite.Equal("Fresno", result.CustomerCity)
	suite.Equal("Ceramic tiles", result.Description)
	suite.Nil(result.PickedUpAt)
	suite.Nil(result.DeliveredAt)

	suite.Require().Len(result.History, 2)
	suite.Equal("NEW", result.History[0].Status)
	suite.Equal("IN_RECEIPT", result.History[1].Status)
	suite.Equal("Collected", result.History[1].Notes)
	suite.Require().NotNil(result.History[1].Latitude)
	suite.InDelta(36.74, *result.History[1].Latitude, 0.0001)
}

func (suite *TrackShipmentQueryHandlerTestSuite) TestHandle_UnknownTrackingNumber_ReturnsNotFoundError() {
	query, err := queries.NewTrackShipmentQuery("FRT00000000000000000000")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Empty(result.TrackingNumber)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TrackShipmentQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.TrackShipmentQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrTrackShipmentQueryIsNotConstructed)
}

func TestTrackShipmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackShipmentQueryHandlerTestSuite))
}
