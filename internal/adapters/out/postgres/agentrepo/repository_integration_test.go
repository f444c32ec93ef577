package agentrepo_test

import (
	"context"
	"testing"

	"orderflow/internal/adapters/out/postgres/agentrepo"
	"orderflow/internal/adapters/out/postgres/pgtest"
	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type AgentRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *agentrepo.GormAgentRepository
	vendorID   kernel.UUID
}

func (suite *AgentRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *AgentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = agentrepo.NewGormAgentRepository(suite.database.DB)
	suite.vendorID = kernel.NewUUID()
}

func (suite *AgentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *AgentRepositoryIntegrationTestSuite) newAgent(name string) *agent.Agent {
	a, err := agent.NewAgent(kernel.NewUUID(), suite.vendorID, name, "+91 90000 00000")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), a))
	return a
}

func (suite *AgentRepositoryIntegrationTestSuite) TestAddAndGet() {
	added := suite.newAgent("Meera")

	loaded, err := suite.repository.Get(context.Background(), added.ID())
	suite.Require().NoError(err)
	suite.True(added.IsEqual(loaded))
	suite.Equal("Meera", loaded.Name())
	suite.Equal(0, loaded.ActiveDeliveries())
	suite.True(loaded.BelongsTo(suite.vendorID))
}

func (suite *AgentRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AgentRepositoryIntegrationTestSuite) TestUpdate_PersistsCounter() {
	ctx := context.Background()
	a := suite.newAgent("Meera")
	a.StartDelivery()
	a.StartDelivery()

	suite.Require().NoError(suite.repository.Update(ctx, a))

	loaded, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(2, loaded.ActiveDeliveries())
}

func (suite *AgentRepositoryIntegrationTestSuite) TestUpdate_Unknown_ReturnsNotFound() {
	ghost, err := agent.NewAgent(kernel.NewUUID(), suite.vendorID, "Ghost", "")
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), ghost)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AgentRepositoryIntegrationTestSuite) TestListByVendor_OrderedByName() {
	suite.newAgent("Zubin")
	suite.newAgent("Anil")
	other, err := agent.NewAgent(kernel.NewUUID(), kernel.NewUUID(), "Bala", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), other))

	roster, err := suite.repository.ListByVendor(context.Background(), suite.vendorID)
	suite.Require().NoError(err)
	suite.Require().Len(roster, 2)
	suite.Equal("Anil", roster[0].Name())
	suite.Equal("Zubin", roster[1].Name())
}

func (suite *AgentRepositoryIntegrationTestSuite) TestGet_LocksRowInsideTransaction() {
	ctx := context.Background()
	a := suite.newAgent("Meera")

	tx := suite.database.DB.Begin()
	defer tx.Rollback()

	_, err := agentrepo.NewGormAgentRepository(tx).Get(ctx, a.ID())
	suite.Require().NoError(err)

	var locked int64
	err = suite.database.DB.Raw(
		"SELECT count(*) FROM agents WHERE id = ? FOR UPDATE SKIP LOCKED", a.ID().Bytes(),
	).Scan(&locked).Error
	suite.Require().NoError(err)
	suite.Equal(int64(0), locked)
}

func TestAgentRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(AgentRepositoryIntegrationTestSuite))
}
