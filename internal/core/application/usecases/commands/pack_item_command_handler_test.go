package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPackItemCommandHandler_Handle_AssignsPackerOnFirstPack(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 5)
	pickEverything(t, testOrder)
	require.Nil(t, testOrder.Packer())

	packerID := kernel.NewUUID()
	cmd, err := commands.NewPackItemCommand(testOrder.ID(), "li-1", 2, &packerID, "mary")
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

	handler := commands.NewPackItemCommandHandler(factory)
	applied, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, order.Packing, testOrder.Status())
	require.NotNil(t, testOrder.Packer())
	assert.True(t, testOrder.Packer().IsEqual(packerID))
	orderRepo.AssertExpectations(t)
}

func TestPackItemCommandHandler_Handle_KeepsExistingPacker(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 5)
	pickEverything(t, testOrder)
	claimedBy := kernel.NewUUID()
	require.NoError(t, testOrder.StartPacking(claimedBy, "mary"))

	otherPacker := kernel.NewUUID()
	cmd, err := commands.NewPackItemCommand(testOrder.ID(), "li-1", 1, &otherPacker, "joan")
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

	handler := commands.NewPackItemCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testOrder.Packer())
	assert.True(t, testOrder.Packer().IsEqual(claimedBy))
}

func TestPackItemCommandHandler_Handle_NoCallerIdentity(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 5)
	pickEverything(t, testOrder)

	cmd, err := commands.NewPackItemCommand(testOrder.ID(), "li-1", 1, nil, "mary")
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

	handler := commands.NewPackItemCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, testOrder.Packer())
	assert.Equal(t, order.Packing, testOrder.Status())
}
