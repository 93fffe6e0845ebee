package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/toterepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tote"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderDetailQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderDetailQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	toteRepo  *toterepo.GormToteRepository
}

func (suite *GetOrderDetailQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &toterepo.ToteDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderDetailQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.toteRepo = toterepo.NewGormToteRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderDetailQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderDetailQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, totes CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderDetailQueryHandlerTestSuite) TestHandle_ReturnsFullDetail() {
	ctx := context.Background()

	o := seedOrder("shop-7", "#7", 3, 2)
	_, err := o.PickItem("li-1", 2, "grace")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	for _, barcode := range []string{"T-101", "T-100"} {
		t, toteErr := tote.NewTote(kernel.NewUUID(), barcode)
		suite.Require().NoError(toteErr)
		suite.Require().NoError(t.Assign(o.ID()))
		suite.Require().NoError(suite.toteRepo.Add(ctx, t))
	}

	query, err := queries.NewGetOrderDetailQuery("shop-7")
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), detail.ID)
	suite.Equal("shop-7", detail.ExternalRef)
	suite.Equal("#7", detail.Number)
	suite.Equal(o.Status().String(), detail.Status)
	suite.False(detail.Approved)
	suite.Nil(detail.Delivery)
	suite.Empty(detail.Photos)
	suite.Equal([]string{"T-100", "T-101"}, detail.ToteBarcodes)

	suite.Require().Len(detail.LineItems, 2)
	first := detail.LineItems[0]
	suite.Equal("li-1", first.Ref)
	suite.Equal(3, first.Quantity)
	suite.Equal(2, first.PickedUnits)
	suite.False(first.Picked)
	suite.Equal(0, detail.LineItems[1].PickedUnits)
}

func (suite *GetOrderDetailQueryHandlerTestSuite) TestHandle_UnknownRef_ReturnsNotFound() {
	query, err := queries.NewGetOrderDetailQuery("shop-404")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderDetailQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderDetailQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderDetailQuery constructor")
}

func TestGetOrderDetailQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderDetailQueryHandlerTestSuite))
}
