package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPickItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 5)
	cmd, err := commands.NewPickItemCommand(testOrder.ID(), "li-1", 3, "grace")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickItemCommandHandler(factory)
	applied, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, applied)
	assert.Equal(t, order.Picking, testOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPickItemCommandHandler_Handle_ClampsAppliedDelta(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 5)
	_, err := testOrder.PickItem("li-1", 4, "grace")
	require.NoError(t, err)

	cmd, err := commands.NewPickItemCommand(testOrder.ID(), "li-1", 10, "grace")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickItemCommandHandler(factory)
	applied, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, applied)
}

func TestPickItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PickItemCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewPickItemCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPickItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPickItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 5)
	cmd, err := commands.NewPickItemCommand(testOrder.ID(), "li-1", 3, "grace")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickItemCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Update")
}

func TestPickItemCommandHandler_Handle_UnknownItemRollsBack(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 5)
	cmd, err := commands.NewPickItemCommand(testOrder.ID(), "li-99", 3, "grace")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickItemCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}
