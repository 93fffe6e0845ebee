package notifyrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/notifyrepo"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockNotifier is a mock implementation of ports.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// RecordingNotifierIntegrationTestSuite verifies that notifications are
// persisted before delivery using a PostgreSQL container.
type RecordingNotifierIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	next      *MockNotifier
	notifier  *notifyrepo.RecordingNotifier
}

func (suite *RecordingNotifierIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&notifyrepo.NotificationDTO{}))
}

func (suite *RecordingNotifierIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)

	suite.next = new(MockNotifier)
	suite.notifier = notifyrepo.NewRecordingNotifier(suite.db, suite.next)
}

func (suite *RecordingNotifierIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RecordingNotifierIntegrationTestSuite) TestNotify_PersistsAndForwards() {
	ctx := context.Background()

	notification := ports.Notification{
		Kind:        "substitution",
		Message:     "Substitution recorded on order #1001",
		Roles:       []string{"admin", "picker"},
		OrderNumber: "#1001",
		ProductID:   "prod-1",
		VariantID:   "var-1",
	}
	suite.next.On("Notify", mock.Anything, notification).Return(nil).Once()

	suite.Require().NoError(suite.notifier.Notify(ctx, notification))
	suite.next.AssertExpectations(suite.T())

	var records []notifyrepo.NotificationDTO
	suite.Require().NoError(suite.db.Find(&records).Error)
	suite.Require().Len(records, 1)
	suite.Equal("substitution", records[0].Kind)
	suite.Equal("admin,picker", records[0].Roles)
	suite.Equal("#1001", records[0].OrderNumber)
}

func (suite *RecordingNotifierIntegrationTestSuite) TestNotify_RecordsEvenWhenDeliveryFails() {
	ctx := context.Background()

	notification := ports.Notification{
		Kind:        "refund",
		Message:     "Refund issued on order #1002",
		OrderNumber: "#1002",
	}
	suite.next.On("Notify", mock.Anything, notification).
		Return(errors.New("webhook down")).Once()

	err := suite.notifier.Notify(ctx, notification)
	suite.Require().Error(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&notifyrepo.NotificationDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func TestRecordingNotifierIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RecordingNotifierIntegrationTestSuite))
}
