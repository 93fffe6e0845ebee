package commands_test

import (
	"context"
	"io"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/subrule"
	"fulfillment/internal/core/domain/model/tote"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByExternalRef(ctx context.Context, externalRef string) (*order.Order, error) {
	args := m.Called(ctx, externalRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockToteRepository struct{ mock.Mock }

func (m *MockToteRepository) Add(ctx context.Context, t *tote.Tote) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockToteRepository) Update(ctx context.Context, t *tote.Tote) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockToteRepository) Get(ctx context.Context, id kernel.UUID) (*tote.Tote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tote.Tote), args.Error(1)
}

func (m *MockToteRepository) GetByBarcode(ctx context.Context, barcode string) (*tote.Tote, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tote.Tote), args.Error(1)
}

func (m *MockToteRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*tote.Tote, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tote.Tote), args.Error(1)
}

type MockOperatorRepository struct{ mock.Mock }

func (m *MockOperatorRepository) Add(ctx context.Context, op *operator.Operator) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperatorRepository) Update(ctx context.Context, op *operator.Operator) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperatorRepository) Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operator.Operator), args.Error(1)
}

func (m *MockOperatorRepository) GetAllActiveInRole(ctx context.Context, role operator.Role) ([]*operator.Operator, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operator.Operator), args.Error(1)
}

type MockRuleRepository struct{ mock.Mock }

func (m *MockRuleRepository) Add(ctx context.Context, r *subrule.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRuleRepository) Update(ctx context.Context, r *subrule.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRuleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRuleRepository) Get(ctx context.Context, id kernel.UUID) (*subrule.Rule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subrule.Rule), args.Error(1)
}

func (m *MockRuleRepository) GetForProduct(ctx context.Context, productID, variantID string) ([]*subrule.Rule, error) {
	args := m.Called(ctx, productID, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subrule.Rule), args.Error(1)
}

// MockUoW backs every UoW shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ToteRepository() ports.ToteRepository {
	args := m.Called()
	return args.Get(0).(ports.ToteRepository)
}

func (m *MockUoW) OperatorRepository() ports.OperatorRepository {
	args := m.Called()
	return args.Get(0).(ports.OperatorRepository)
}

func (m *MockUoW) SubstitutionRuleRepository() ports.SubstitutionRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.SubstitutionRuleRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderToteUoWFactory struct{ mock.Mock }

func (m *MockOrderToteUoWFactory) Create() commands.OrderToteUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderToteUoW)
}

type MockOrderOperatorUoWFactory struct{ mock.Mock }

func (m *MockOrderOperatorUoWFactory) Create() commands.OrderOperatorUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderOperatorUoW)
}

type MockOperatorUoWFactory struct{ mock.Mock }

func (m *MockOperatorUoWFactory) Create() commands.OperatorUoW {
	args := m.Called()
	return args.Get(0).(commands.OperatorUoW)
}

type MockRuleUoWFactory struct{ mock.Mock }

func (m *MockRuleUoWFactory) Create() commands.RuleUoW {
	args := m.Called()
	return args.Get(0).(commands.RuleUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockInventoryAdjuster struct{ mock.Mock }

func (m *MockInventoryAdjuster) AdjustInventory(ctx context.Context, variantID string, delta int) error {
	args := m.Called(ctx, variantID, delta)
	return args.Error(0)
}

type MockRefundIssuer struct{ mock.Mock }

func (m *MockRefundIssuer) IssueRefund(ctx context.Context, externalRef, lineItemRef string, quantity int) error {
	args := m.Called(ctx, externalRef, lineItemRef, quantity)
	return args.Error(0)
}

type MockDeliveryService struct{ mock.Mock }

func (m *MockDeliveryService) FetchStops(ctx context.Context) ([]ports.DeliveryStop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.DeliveryStop), args.Error(1)
}

func (m *MockDeliveryService) AddStopNote(ctx context.Context, stopID, note string) error {
	args := m.Called(ctx, stopID, note)
	return args.Error(0)
}

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) FetchOpenOrders(ctx context.Context) ([]ports.ImportedOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.ImportedOrder), args.Error(1)
}

type MockObjectStorage struct{ mock.Mock }

func (m *MockObjectStorage) Upload(ctx context.Context, name, contentType string, body io.Reader) (ports.StoredObject, error) {
	args := m.Called(ctx, name, contentType, body)
	return args.Get(0).(ports.StoredObject), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, storageID string) error {
	args := m.Called(ctx, storageID)
	return args.Error(0)
}
