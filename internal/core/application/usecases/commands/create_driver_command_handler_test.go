package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDriverCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateDriverCommand(
			kernel.NewUUID(), "John Doe", "john@freight.test", "+15550123", "AB-123", "DL-555", 0.2,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "john@freight.test", cmd.Email())
		assert.InDelta(t, 0.2, cmd.CommissionRate(), 1e-9)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := commands.NewCreateDriverCommand(
			kernel.NewUUID(), "John Doe", "not-an-email", "", "AB-123", "DL-555", 0.2,
		)

		require.ErrorIs(t, err, commands.ErrDriverEmailIsInvalid)
	})

	t.Run("should reject out of range commission rate", func(t *testing.T) {
		_, err := commands.NewCreateDriverCommand(
			kernel.NewUUID(), "John Doe", "john@freight.test", "", "AB-123", "DL-555", 1.5,
		)

		require.ErrorIs(t, err, commands.ErrCommissionRateIsInvalid)
	})
}

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID, "John Doe", "john@freight.test", "+15550123", "AB-123", "DL-555", 0.2,
	)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("ExistsEmail", ctx, "john@freight.test").Return(false, nil).Once(),
		driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory, 0.15)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := driverRepo.Calls[1].Arguments[1].(*driver.Driver)
	assert.True(t, added.ID().IsEqual(driverID))
	assert.True(t, added.IsActive())
	assert.True(t, added.IsAvailable())
	assert.InDelta(t, 0.2, added.CommissionRate(), 1e-9, "explicit rate wins over the default")

	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_DefaultCommissionRate(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateDriverCommand(
		kernel.NewUUID(), "John Doe", "john@freight.test", "", "AB-123", "DL-555", 0,
	)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("ExistsEmail", ctx, "john@freight.test").Return(false, nil).Once(),
		driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory, 0.15)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := driverRepo.Calls[1].Arguments[1].(*driver.Driver)
	assert.InDelta(t, 0.15, added.CommissionRate(), 1e-9)
}

func TestCreateDriverCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateDriverCommand(
		kernel.NewUUID(), "John Doe", "john@freight.test", "", "AB-123", "DL-555", 0.2,
	)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("ExistsEmail", ctx, "john@freight.test").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory, 0.15)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDriverEmailTaken)
	driverRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
