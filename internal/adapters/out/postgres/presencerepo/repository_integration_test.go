package presencerepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/presencerepo"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/driver"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PresenceRepositoryIntegrationTestSuite verifies the upsert semantics of the
// presence registry against a real PostgreSQL container.
type PresenceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *presencerepo.GormPresenceRepository
}

func (suite *PresenceRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&presencerepo.PresenceDTO{}))
}

func (suite *PresenceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE driver_presence").Error)
	suite.repository = presencerepo.NewGormPresenceRepository(suite.db)
}

func (suite *PresenceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PresenceRepositoryIntegrationTestSuite) TestUpsert_FirstReportCreatesRow() {
	ctx := context.Background()

	loc, err := kernel.NewLocation(10.8231, 106.6297)
	suite.Require().NoError(err)

	presence, err := driver.NewPresence(7, true, &loc, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, presence))

	loaded, err := suite.repository.Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(int64(7), loaded.DriverID())
	suite.True(loaded.Available())
	suite.Require().NotNil(loaded.Location())
	suite.InDelta(10.8231, loaded.Location().Lat(), 1e-9)
}

func (suite *PresenceRepositoryIntegrationTestSuite) TestUpsert_LastWriteWins() {
	ctx := context.Background()

	loc, err := kernel.NewLocation(10.8231, 106.6297)
	suite.Require().NoError(err)

	first, err := driver.NewPresence(7, true, &loc, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, first))

	// later report without coordinates overwrites the known position
	second, err := driver.NewPresence(7, false, nil, time.Now().UTC().Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, second))

	loaded, err := suite.repository.Get(ctx, 7)
	suite.Require().NoError(err)
	suite.False(loaded.Available())
	suite.Nil(loaded.Location())

	var count int64
	suite.Require().NoError(suite.db.Table("driver_presence").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *PresenceRepositoryIntegrationTestSuite) TestGet_UnknownDriver_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), 12345)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PresenceRepositoryIntegrationTestSuite) TestGetAllAvailable_FiltersUnavailable() {
	ctx := context.Background()

	available, err := driver.NewPresence(1, true, nil, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, available))

	unavailable, err := driver.NewPresence(2, false, nil, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, unavailable))

	presences, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(presences, 1)
	suite.Equal(int64(1), presences[0].DriverID())
}

func TestPresenceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PresenceRepositoryIntegrationTestSuite))
}
