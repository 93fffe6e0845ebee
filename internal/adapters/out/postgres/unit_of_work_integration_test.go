package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/operatorrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/subrulerepo"
	"fulfillment/internal/adapters/out/postgres/toterepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tote"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&toterepo.ToteDTO{},
		&operatorrepo.OperatorDTO{},
		&subrulerepo.RuleDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, totes, operators, substitution_rules").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(externalRef string) *order.Order {
	item, err := order.NewLineItem("li-1", "prod-1", "var-1", "Oat Milk 1L", "OAT-1L", 2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), externalRef, "#1001", "Ada Lovelace", []*order.LineItem{item})
	suite.Require().NoError(err)

	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("shop-3001")
	testTote, err := tote.NewTote(kernel.NewUUID(), "T-100")
	suite.Require().NoError(err)
	suite.Require().NoError(testTote.Assign(testOrder.ID()))
	_, err = testOrder.AddTote(testTote.ID(), "grace")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.ToteRepository().Add(ctx, testTote))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loadedOrder, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{testTote.ID()}, loadedOrder.ToteIDs())

	loadedTote, err := verify.ToteRepository().Get(ctx, testTote.ID())
	suite.Require().NoError(err)
	suite.Equal(tote.StatusAssigned, loadedTote.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("shop-3002")
	testTote, err := tote.NewTote(kernel.NewUUID(), "T-101")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.ToteRepository().Add(ctx, testTote))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err = verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = verify.ToteRepository().Get(ctx, testTote.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_WriteDirectly() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("shop-3003")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	verify := suite.factory.Create()
	loaded, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), loaded.ID())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
