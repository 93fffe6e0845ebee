package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tote"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignToteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 2)
	testTote, err := tote.NewTote(kernel.NewUUID(), "T-001")
	require.NoError(t, err)

	cmd, err := commands.NewAssignToteCommand(testOrder.ID(), "T-001", "grace")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	toteRepo := new(MockToteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ToteRepository").Return(toteRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		toteRepo.On("GetByBarcode", ctx, "T-001").Return(testTote, nil).Once(),
		toteRepo.On("Update", ctx, mock.AnythingOfType("*tote.Tote")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderToteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignToteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, tote.StatusAssigned, testTote.Status())
	require.NotNil(t, testTote.OrderID())
	assert.True(t, testTote.OrderID().IsEqual(testOrder.ID()))
	assert.Contains(t, testOrder.ToteIDs(), testTote.ID())
	orderRepo.AssertExpectations(t)
	toteRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignToteCommandHandler_Handle_RescanIsIdempotent(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 2)
	testTote, err := tote.NewTote(kernel.NewUUID(), "T-001")
	require.NoError(t, err)
	require.NoError(t, testTote.Assign(testOrder.ID()))
	_, err = testOrder.AddTote(testTote.ID(), "grace")
	require.NoError(t, err)

	cmd, err := commands.NewAssignToteCommand(testOrder.ID(), "T-001", "grace")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	toteRepo := new(MockToteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ToteRepository").Return(toteRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		toteRepo.On("GetByBarcode", ctx, "T-001").Return(testTote, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderToteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignToteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	toteRepo.AssertNotCalled(t, "Update")
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignToteCommandHandler_Handle_ToteOnAnotherOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 2)
	testTote, err := tote.NewTote(kernel.NewUUID(), "T-001")
	require.NoError(t, err)
	require.NoError(t, testTote.Assign(kernel.NewUUID()))

	cmd, err := commands.NewAssignToteCommand(testOrder.ID(), "T-001", "grace")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	toteRepo := new(MockToteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ToteRepository").Return(toteRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		toteRepo.On("GetByBarcode", ctx, "T-001").Return(testTote, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderToteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignToteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignToteCommandHandler_Handle_ToteNotFound(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, 2)
	cmd, err := commands.NewAssignToteCommand(testOrder.ID(), "T-404", "grace")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	toteRepo := new(MockToteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ToteRepository").Return(toteRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		toteRepo.On("GetByBarcode", ctx, "T-404").Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderToteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignToteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
