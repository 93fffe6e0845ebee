package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPackBoardQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPackBoardQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetPackBoardQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPackBoardQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetPackBoardQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPackBoardQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetPackBoardQueryHandlerTestSuite) TestHandle_ReturnsOrdersAwaitingPacking() {
	ctx := context.Background()

	waiting := seedOrder("shop-1", "#1", 2)
	pickWholeOrder(waiting)
	err := suite.orderRepo.Add(ctx, waiting)
	suite.Require().NoError(err)

	packerID := kernel.NewUUID()
	inProgress := seedOrder("shop-2", "#2", 1, 1)
	pickWholeOrder(inProgress)
	err = inProgress.StartPacking(packerID, "mary")
	suite.Require().NoError(err)
	_, err = inProgress.PackItem("li-1", 1, "mary")
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(ctx, inProgress)
	suite.Require().NoError(err)

	stillPicking := seedOrder("shop-3", "#3", 2)
	_, err = stillPicking.PickItem("li-1", 1, "grace")
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(ctx, stillPicking)
	suite.Require().NoError(err)

	query := queries.NewGetPackBoardQuery()

	board, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(board, 2)

	suite.Equal("#1", board[0].Number)
	suite.Equal("picked", board[0].Status)
	suite.Nil(board[0].PackerID)

	suite.Equal("#2", board[1].Number)
	suite.Equal("packing", board[1].Status)
	suite.Require().NotNil(board[1].PackerID)
	suite.True(board[1].PackerID.IsEqual(packerID))
	suite.Equal(2, board[1].PickedItems)
	suite.Equal(1, board[1].PackedItems)
}

func (suite *GetPackBoardQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPackBoardQuery{}

	board, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(board)
	suite.Contains(err.Error(), "must be created via NewGetPackBoardQuery constructor")
}

func TestGetPackBoardQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPackBoardQueryHandlerTestSuite))
}
