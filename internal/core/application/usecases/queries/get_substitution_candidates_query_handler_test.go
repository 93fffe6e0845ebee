package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/subrulerepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subrule"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetSubstitutionCandidatesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetSubstitutionCandidatesQueryHandler
	ruleRepo  *subrulerepo.GormSubstitutionRuleRepository
}

func (suite *GetSubstitutionCandidatesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&subrulerepo.RuleDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetSubstitutionCandidatesQueryHandler(db)
	suite.ruleRepo = subrulerepo.NewGormSubstitutionRuleRepository(db, &mockAggregateTracker{})
}

func (suite *GetSubstitutionCandidatesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetSubstitutionCandidatesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE substitution_rules CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetSubstitutionCandidatesQueryHandlerTestSuite) addRule(
	productID, variantID string,
	candidates []subrule.Candidate,
) {
	rule, err := subrule.NewRule(kernel.NewUUID(), productID, variantID, candidates)
	suite.Require().NoError(err)
	err = suite.ruleRepo.Add(context.Background(), rule)
	suite.Require().NoError(err)
}

func (suite *GetSubstitutionCandidatesQueryHandlerTestSuite) TestHandle_NoRules_ReturnsEmptySlice() {
	query, err := queries.NewGetSubstitutionCandidatesQuery("prod-1", "var-1")
	suite.Require().NoError(err)

	candidates, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(candidates)
	suite.Empty(candidates)
}

func (suite *GetSubstitutionCandidatesQueryHandlerTestSuite) TestHandle_MergesVariantAndProductRules() {
	suite.addRule("prod-1", "var-1", []subrule.Candidate{
		{ProductID: "prod-9", VariantID: "var-9", Reason: "same brand", Priority: 2},
	})
	suite.addRule("prod-1", "", []subrule.Candidate{
		{ProductID: "prod-8", Reason: "house fallback", Priority: 1},
	})
	suite.addRule("prod-2", "var-1", []subrule.Candidate{
		{ProductID: "prod-7", Priority: 1},
	})

	query, err := queries.NewGetSubstitutionCandidatesQuery("prod-1", "var-1")
	suite.Require().NoError(err)

	candidates, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(candidates, 2)
	suite.Equal("prod-8", candidates[0].ProductID)
	suite.Equal(1, candidates[0].Priority)
	suite.Equal("prod-9", candidates[1].ProductID)
	suite.Equal("var-9", candidates[1].VariantID)
	suite.Equal("same brand", candidates[1].Reason)
}

func (suite *GetSubstitutionCandidatesQueryHandlerTestSuite) TestHandle_EmptyVariant_MatchesOnlyProductWideRules() {
	suite.addRule("prod-1", "var-1", []subrule.Candidate{
		{ProductID: "prod-9", Priority: 1},
	})
	suite.addRule("prod-1", "", []subrule.Candidate{
		{ProductID: "prod-8", Priority: 2},
	})

	query, err := queries.NewGetSubstitutionCandidatesQuery("prod-1", "")
	suite.Require().NoError(err)

	candidates, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.Equal("prod-8", candidates[0].ProductID)
}

func (suite *GetSubstitutionCandidatesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetSubstitutionCandidatesQuery{}

	candidates, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(candidates)
	suite.Contains(err.Error(), "must be created via NewGetSubstitutionCandidatesQuery constructor")
}

func TestGetSubstitutionCandidatesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetSubstitutionCandidatesQueryHandlerTestSuite))
}
