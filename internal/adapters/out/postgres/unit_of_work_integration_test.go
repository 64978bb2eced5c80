package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/menurepo"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/orderrepo"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/presencerepo"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/userrepo"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/driver"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across the
// repositories handed out by one unit of work.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&presencerepo.PresenceDTO{},
		&menurepo.MenuItemDTO{},
		&userrepo.UserDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, driver_presence, menu_items, users RESTART IDENTITY").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	customerID, err := uow.Identity().ResolveCustomerByEmail(ctx, "buyer@example.com")
	suite.Require().NoError(err)
	suite.Require().Positive(customerID)

	aggregate := suite.newPendingOrder(&customerID)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	presence, err := driver.NewPresence(7, true, nil, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PresenceRepository().Upsert(ctx, presence))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loaded, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, loaded.Status())

	_, err = verify.PresenceRepository().Get(ctx, 7)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.newPendingOrder(nil)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCatalog_ReadsSeededMenu() {
	ctx := context.Background()

	suite.Require().NoError(suite.db.Create(&menurepo.MenuItemDTO{
		Name: "Chicken Biryani", Price: 159000, Active: true,
	}).Error)
	suite.Require().NoError(suite.db.Create(&menurepo.MenuItemDTO{
		Name: "Retired Dish", Price: 50000, Active: false,
	}).Error)

	uow := suite.factory.Create()
	items, err := uow.Catalog().GetItems(ctx, []int64{1, 2, 3})
	suite.Require().NoError(err)

	suite.Require().Len(items, 2)
	suite.Equal("Chicken Biryani", items[1].Name)
	suite.True(items[1].Active)
	suite.False(items[2].Active)
	suite.NotContains(items, int64(3))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIdentity_GuestAccountIsReused() {
	ctx := context.Background()

	uow := suite.factory.Create()
	first, err := uow.Identity().ResolveCustomerByEmail(ctx, "Guest@Example.com")
	suite.Require().NoError(err)

	second, err := uow.Identity().ResolveCustomerByEmail(ctx, "guest@example.com")
	suite.Require().NoError(err)
	suite.Equal(first, second)

	var user userrepo.UserDTO
	suite.Require().NoError(suite.db.Take(&user, "id = ?", first).Error)
	suite.Equal("guest", user.Name)
	suite.Equal("guest@example.com", user.Email)
}

func (suite *UnitOfWorkIntegrationTestSuite) newPendingOrder(customerID *int64) *order.Order {
	biryani, err := order.NewLineItem(1, "Chicken Biryani", 159000, 2)
	suite.Require().NoError(err)

	items := []order.LineItem{biryani}
	totals, err := order.NewTotals(order.ItemsTotal(items), 15000, 0)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(customerID, "buyer@example.com", items, totals, nil,
		time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
