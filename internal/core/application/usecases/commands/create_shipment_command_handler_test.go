package commands_test

import (
	"errors"
	"strings"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateShipmentCommand(t)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("ExistsTrackingNumberOrBarcode", ctx, mock.Anything, mock.Anything).
			Return(false, nil).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := shipmentRepo.Calls[1].Arguments[1].(*shipment.Shipment)
	assert.Equal(t, shipment.New, added.Status())
	assert.True(t, strings.HasPrefix(added.TrackingNumber(), shipment.TrackingNumberPrefix))
	assert.True(t, strings.HasPrefix(added.Barcode(), shipment.BarcodePrefix))
	assert.True(t, added.ID().IsEqual(cmd.ShipmentID()))
	require.Len(t, added.History(), 1)

	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_RetriesOnCollision(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateShipmentCommand(t)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("ExistsTrackingNumberOrBarcode", ctx, mock.Anything, mock.Anything).
			Return(true, nil).Twice(),
		shipmentRepo.On("ExistsTrackingNumberOrBarcode", ctx, mock.Anything, mock.Anything).
			Return(false, nil).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	shipmentRepo.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_CollisionBudgetExhausted(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateShipmentCommand(t)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("ExistsTrackingNumberOrBarcode", ctx, mock.Anything, mock.Anything).
			Return(true, nil).Times(5),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTrackingNumberCollision)
	shipmentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateShipmentCommand

	factory := new(MockShipmentUoWFactory)
	handler := commands.NewCreateShipmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateShipmentCommand(t)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("ExistsTrackingNumberOrBarcode", ctx, mock.Anything, mock.Anything).
			Return(false, nil).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).
			Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert error")
}
