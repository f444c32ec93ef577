package positionstore_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/pgtest"
	"orderflow/internal/adapters/out/postgres/positionstore"
	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
)

type PositionStoreIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	store    *positionstore.GormPositionStore
	now      time.Time
}

func (suite *PositionStoreIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *PositionStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.store = positionstore.NewGormPositionStore(suite.database.DB)
	suite.now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
}

func (suite *PositionStoreIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *PositionStoreIntegrationTestSuite) position(agentID kernel.UUID, lat, lng float64, at time.Time) agent.Position {
	point, err := kernel.NewGeoPoint(lat, lng)
	suite.Require().NoError(err)
	p, err := agent.NewPosition(agentID, point, at)
	suite.Require().NoError(err)
	return p
}

func (suite *PositionStoreIntegrationTestSuite) TestPut_OverwritesPrevious() {
	ctx := context.Background()
	agentID := kernel.NewUUID()

	suite.Require().NoError(suite.store.Put(ctx, suite.position(agentID, 12.97, 77.59, suite.now)))
	suite.Require().NoError(suite.store.Put(ctx, suite.position(agentID, 12.98, 77.60, suite.now.Add(5*time.Second))))

	got, err := suite.store.Get(ctx, agentID)
	suite.Require().NoError(err)
	suite.InDelta(12.98, got.Point.Lat(), 1e-9)
	suite.InDelta(77.60, got.Point.Lng(), 1e-9)
	suite.True(suite.now.Add(5 * time.Second).Equal(got.RecordedAt))

	var rows int64
	suite.Require().NoError(suite.database.DB.Table("agent_positions").Count(&rows).Error)
	suite.Equal(int64(1), rows)
}

func (suite *PositionStoreIntegrationTestSuite) TestGet_NeverReported_ReturnsNotFound() {
	_, err := suite.store.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PositionStoreIntegrationTestSuite) TestPut_WithNotify_SignalsAgentID() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, suite.database.URL)
	suite.Require().NoError(err)
	defer conn.Close(context.Background())
	_, err = conn.Exec(ctx, "LISTEN "+positionstore.ChannelAgentPosition)
	suite.Require().NoError(err)

	agentID := kernel.NewUUID()
	store := positionstore.NewGormPositionStore(suite.database.DB).WithNotify()
	suite.Require().NoError(store.Put(ctx, suite.position(agentID, 12.97, 77.59, suite.now)))

	notification, err := conn.WaitForNotification(ctx)
	suite.Require().NoError(err)
	suite.Equal(positionstore.ChannelAgentPosition, notification.Channel)
	suite.Equal(agentID.String(), notification.Payload)
}

func TestPositionStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(PositionStoreIntegrationTestSuite))
}
