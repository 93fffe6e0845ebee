package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func importedOrder(externalRef, number string) ports.ImportedOrder {
	return ports.ImportedOrder{
		ExternalRef:  externalRef,
		Number:       number,
		CustomerName: "Ada Lovelace",
		LineItems: []ports.ImportedLineItem{
			{Ref: "li-1", ProductID: "prod-1", VariantID: "var-1", Name: "Oat Milk 1L", SKU: "OAT-1L", Quantity: 3},
			{Ref: "li-2", ProductID: "prod-2", VariantID: "var-2", Name: "Rye Bread", SKU: "RYE-800", Quantity: 1},
		},
	}
}

func TestImportOrdersCommandHandler_Handle_CreatesAndDispatches(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewImportOrdersCommand()

	picker, err := operator.NewOperator(kernel.NewUUID(), "Grace", operator.RolePicker)
	require.NoError(t, err)

	source := new(MockOrderSource)
	source.On("FetchOpenOrders", ctx).Return([]ports.ImportedOrder{importedOrder("shop-2001", "#2001")}, nil).Once()

	orderRepo := new(MockOrderRepository)
	operatorRepo := new(MockOperatorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OperatorRepository").Return(operatorRepo).Once(),
		orderRepo.On("GetByExternalRef", ctx, "shop-2001").Return(nil, errs.ErrObjectNotFound).Once(),
		operatorRepo.On("GetAllActiveInRole", ctx, operator.RolePicker).Return([]*operator.Operator{picker}, nil).Once(),
		operatorRepo.On("Update", ctx, mock.AnythingOfType("*operator.Operator")).Return(nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderOperatorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewImportOrdersCommandHandler(factory, source)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 4, picker.LineItemsAssigned())
	source.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	operatorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestImportOrdersCommandHandler_Handle_SortsLineItemsBySKU(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewImportOrdersCommand()

	payload := ports.ImportedOrder{
		ExternalRef:  "shop-2005",
		Number:       "#2005",
		CustomerName: "Ada Lovelace",
		LineItems: []ports.ImportedLineItem{
			{Ref: "li-1", ProductID: "prod-1", Name: "Rye Bread", SKU: "RYE-800", Quantity: 1},
			{Ref: "li-2", ProductID: "prod-2", Name: "Apple Juice", SKU: "APL-1L", Quantity: 2},
			{Ref: "li-3", ProductID: "prod-3", Name: "Oat Milk 1L", SKU: "OAT-1L", Quantity: 3},
		},
	}

	source := new(MockOrderSource)
	source.On("FetchOpenOrders", ctx).Return([]ports.ImportedOrder{payload}, nil).Once()

	var added *order.Order
	orderRepo := new(MockOrderRepository)
	operatorRepo := new(MockOperatorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OperatorRepository").Return(operatorRepo).Once(),
		orderRepo.On("GetByExternalRef", ctx, "shop-2005").Return(nil, errs.ErrObjectNotFound).Once(),
		operatorRepo.On("GetAllActiveInRole", ctx, operator.RolePicker).Return([]*operator.Operator{}, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			added = args.Get(1).(*order.Order)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderOperatorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewImportOrdersCommandHandler(factory, source)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, created)
	require.NotNil(t, added)

	skus := make([]string, 0, len(added.LineItems()))
	for _, li := range added.LineItems() {
		skus = append(skus, li.SKU())
	}
	assert.Equal(t, []string{"APL-1L", "OAT-1L", "RYE-800"}, skus)
}

func TestImportOrdersCommandHandler_Handle_SkipsExistingOrders(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewImportOrdersCommand()

	existing := newTestOrder(t, 1)

	source := new(MockOrderSource)
	source.On("FetchOpenOrders", ctx).Return([]ports.ImportedOrder{importedOrder("shop-1001", "#1001")}, nil).Once()

	orderRepo := new(MockOrderRepository)
	operatorRepo := new(MockOperatorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OperatorRepository").Return(operatorRepo).Once(),
		orderRepo.On("GetByExternalRef", ctx, "shop-1001").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderOperatorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewImportOrdersCommandHandler(factory, source)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, created)
	orderRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestImportOrdersCommandHandler_Handle_NoPickerOnShift(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewImportOrdersCommand()

	source := new(MockOrderSource)
	source.On("FetchOpenOrders", ctx).Return([]ports.ImportedOrder{importedOrder("shop-2002", "#2002")}, nil).Once()

	orderRepo := new(MockOrderRepository)
	operatorRepo := new(MockOperatorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OperatorRepository").Return(operatorRepo).Once(),
		orderRepo.On("GetByExternalRef", ctx, "shop-2002").Return(nil, errs.ErrObjectNotFound).Once(),
		operatorRepo.On("GetAllActiveInRole", ctx, operator.RolePicker).Return([]*operator.Operator{}, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderOperatorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewImportOrdersCommandHandler(factory, source)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	operatorRepo.AssertNotCalled(t, "Update")
}

func TestImportOrdersCommandHandler_Handle_FetchError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewImportOrdersCommand()

	source := new(MockOrderSource)
	source.On("FetchOpenOrders", ctx).Return(nil, errors.New("shop unreachable")).Once()

	factory := new(MockOrderOperatorUoWFactory)

	handler := commands.NewImportOrdersCommandHandler(factory, source)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "shop unreachable")
	factory.AssertNotCalled(t, "Create")
}

func TestImportOrdersCommandHandler_Handle_BadPayloadDoesNotPoisonSweep(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewImportOrdersCommand()

	bad := ports.ImportedOrder{ExternalRef: "shop-2003", Number: "#2003", CustomerName: "Ada Lovelace"}
	good := importedOrder("shop-2004", "#2004")

	source := new(MockOrderSource)
	source.On("FetchOpenOrders", ctx).Return([]ports.ImportedOrder{bad, good}, nil).Once()

	orderRepo := new(MockOrderRepository)
	operatorRepo := new(MockOperatorRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("OperatorRepository").Return(operatorRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()
	orderRepo.On("GetByExternalRef", ctx, "shop-2003").Return(nil, errs.ErrObjectNotFound).Once()
	orderRepo.On("GetByExternalRef", ctx, "shop-2004").Return(nil, errs.ErrObjectNotFound).Once()
	operatorRepo.On("GetAllActiveInRole", ctx, operator.RolePicker).Return([]*operator.Operator{}, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockOrderOperatorUoWFactory)
	factory.On("Create").Return(uow).Twice()

	handler := commands.NewImportOrdersCommandHandler(factory, source)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	orderRepo.AssertExpectations(t)
}
