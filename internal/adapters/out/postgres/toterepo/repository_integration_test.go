package toterepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/toterepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tote"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ToteRepositoryIntegrationTestSuite provides integration tests for ToteRepository
// using PostgreSQL containers to verify database persistence behavior.
type ToteRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *toterepo.GormToteRepository
	tracker    *MockAggregateTracker
}

func (suite *ToteRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&toterepo.ToteDTO{}))
}

func (suite *ToteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE totes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = toterepo.NewGormToteRepository(suite.db, suite.tracker)
}

func (suite *ToteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ToteRepositoryIntegrationTestSuite) TestAdd_And_GetByBarcode() {
	ctx := context.Background()

	testTote, err := tote.NewTote(kernel.NewUUID(), "T-001")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testTote.ID(), testTote).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testTote))

	loaded, err := suite.repository.GetByBarcode(ctx, "T-001")
	suite.Require().NoError(err)
	suite.Equal(testTote.ID(), loaded.ID())
	suite.Equal(tote.StatusAvailable, loaded.Status())
	suite.Nil(loaded.OrderID())

	_, err = suite.repository.GetByBarcode(ctx, "T-404")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ToteRepositoryIntegrationTestSuite) TestUpdate_AssignAndRelease() {
	ctx := context.Background()

	testTote, err := tote.NewTote(kernel.NewUUID(), "T-002")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTote))

	orderID := kernel.NewUUID()
	suite.Require().NoError(testTote.Assign(orderID))
	suite.Require().NoError(suite.repository.Update(ctx, testTote))

	assigned, err := suite.repository.Get(ctx, testTote.ID())
	suite.Require().NoError(err)
	suite.Equal(tote.StatusAssigned, assigned.Status())
	suite.Require().NotNil(assigned.OrderID())
	suite.True(assigned.OrderID().IsEqual(orderID))

	assigned.Release()
	suite.Require().NoError(suite.repository.Update(ctx, assigned))

	released, err := suite.repository.Get(ctx, testTote.ID())
	suite.Require().NoError(err)
	suite.Equal(tote.StatusAvailable, released.Status())
	suite.Nil(released.OrderID())
}

func (suite *ToteRepositoryIntegrationTestSuite) TestGetAllForOrder() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	for _, barcode := range []string{"T-010", "T-011"} {
		t, err := tote.NewTote(kernel.NewUUID(), barcode)
		suite.Require().NoError(err)
		suite.Require().NoError(t.Assign(orderID))
		suite.Require().NoError(suite.repository.Add(ctx, t))
	}

	idle, err := tote.NewTote(kernel.NewUUID(), "T-012")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, idle))

	totes, err := suite.repository.GetAllForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Len(totes, 2)
}

func (suite *ToteRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	testTote, err := tote.NewTote(kernel.NewUUID(), "T-020")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, testTote)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestToteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ToteRepositoryIntegrationTestSuite))
}
