package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assignedPair(t *testing.T, transport courier.Transport, x, y kernel.Coordinate) (*order.Order, *courier.Courier) {
	t.Helper()
	o := newTestOrder(t, x, y, 1)
	c := newReadyCourier(t, transport)
	require.NoError(t, o.AssignToCourier(c))
	return o, c
}

func TestMoveCouriersCommand_Validate(t *testing.T) {
	cmd := commands.NewMoveCouriersCommand()
	require.NoError(t, cmd.Validate())

	var zero commands.MoveCouriersCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrMoveCouriersCommandIsNotConstructed)
}

func TestMoveCouriersCommandHandler_Handle_MovesAndCompletes(t *testing.T) {
	// Arrange
	ctx := t.Context()
	farOrder, walker := assignedPair(t, courier.Pedestrian, 5, 5)
	nearOrder, driver := assignedPair(t, courier.Car, 3, 2)

	mockCourierRepo := new(MockCourierRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CourierRepository").Return(mockCourierRepo).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockOrderRepo.On("GetAllAssigned", ctx).Return([]*order.Order{farOrder, nearOrder}, nil).Once()
	mockCourierRepo.On("Get", ctx, walker.ID()).Return(walker, nil).Once()
	mockCourierRepo.On("Get", ctx, driver.ID()).Return(driver, nil).Once()
	mockOrderRepo.On("Update", ctx, farOrder).Return(nil).Once()
	mockOrderRepo.On("Update", ctx, nearOrder).Return(nil).Once()
	mockCourierRepo.On("Update", ctx, walker).Return(nil).Once()
	mockCourierRepo.On("Update", ctx, driver).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewMoveCouriersCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, commands.NewMoveCouriersCommand())

	// Assert
	require.NoError(t, err)

	assert.Equal(t, kernel.Coordinate(2), walker.Location().X())
	assert.Equal(t, kernel.Coordinate(1), walker.Location().Y())
	assert.Equal(t, order.Assigned, farOrder.Status())
	assert.Equal(t, courier.StatusBusy, walker.Status())

	arrived, err := driver.Location().IsEqual(nearOrder.Location())
	require.NoError(t, err)
	assert.True(t, arrived)
	assert.Equal(t, order.Completed, nearOrder.Status())
	assert.Equal(t, courier.StatusReady, driver.Status())

	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockCourierRepo.AssertExpectations(t)
}

func TestMoveCouriersCommandHandler_Handle_NoAssignedOrders(t *testing.T) {
	// Arrange
	ctx := t.Context()
	mockCourierRepo := new(MockCourierRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CourierRepository").Return(mockCourierRepo).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockOrderRepo.On("GetAllAssigned", ctx).Return([]*order.Order{}, nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewMoveCouriersCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, commands.NewMoveCouriersCommand())

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
}

func TestMoveCouriersCommandHandler_Handle_GetCourierError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	o, c := assignedPair(t, courier.Bicycle, 4, 1)
	expectedError := errors.New("get failed")

	mockCourierRepo := new(MockCourierRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CourierRepository").Return(mockCourierRepo).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockOrderRepo.On("GetAllAssigned", ctx).Return([]*order.Order{o}, nil).Once()
	mockCourierRepo.On("Get", ctx, c.ID()).Return((*courier.Courier)(nil), expectedError).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewMoveCouriersCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, commands.NewMoveCouriersCommand())

	// Assert
	assert.Equal(t, expectedError, err)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMoveCouriersCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockFactory := new(MockUoWFactory)
	handler := commands.NewMoveCouriersCommandHandler(mockFactory)

	err := handler.Handle(t.Context(), commands.MoveCouriersCommand{})

	require.ErrorIs(t, err, commands.ErrMoveCouriersCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
