package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t, 51.5, -0.12)

	cmd, err := commands.NewDeleteDriverCommand(testDriver.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("CountActiveForDriver", ctx, testDriver.ID()).Return(0, nil).Once(),
		driverRepo.On("Delete", ctx, testDriver.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	driverRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteDriverCommandHandler_Handle_DriverWithOpenShipments(t *testing.T) {
	ctx := t.Context()

	// The flag claims the driver is free; the shipment count says otherwise
	// and must win.
	testDriver := newTestDriver(t, 51.5, -0.12)

	cmd, err := commands.NewDeleteDriverCommand(testDriver.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("CountActiveForDriver", ctx, testDriver.ID()).Return(2, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDriverIsBusy)
	driverRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteDriverCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewDeleteDriverCommand(kernel.NewUUID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, mock.Anything).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDriverNotFound)
}
