package applicationrepo_test

import (
	"context"
	"testing"
	"time"

	"workmarket/internal/adapters/out/postgres/applicationrepo"
	"workmarket/internal/adapters/out/postgres/orderrepo"
	"workmarket/internal/adapters/out/postgres/pgtest"
	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/core/ports"
	"workmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ApplicationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *applicationrepo.GormApplicationRepository
	orders     *orderrepo.GormOrderRepository
	now        time.Time
}

func (suite *ApplicationRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ApplicationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = applicationrepo.NewGormApplicationRepository(suite.db, nil)
	suite.orders = orderrepo.NewGormOrderRepository(suite.db, nil)
	suite.now = time.Now().UTC().Truncate(time.Microsecond)
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	o := suite.addOrder()

	days := 3
	from := suite.now.Add(24 * time.Hour)
	price, err := kernel.MoneyFromInt(1500)
	suite.Require().NoError(err)
	bid, err := application.NewBid(price, &days, "Can start tomorrow", &from)
	suite.Require().NoError(err)
	app, err := application.NewApplication(kernel.NewUUID(), o.ID(), kernel.NewUUID(), bid, suite.now)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, app))

	got, err := suite.repository.Get(ctx, app.ID())
	suite.Require().NoError(err)
	suite.Equal(app.OrderID(), got.OrderID())
	suite.Equal(app.ExecutorID(), got.ExecutorID())
	suite.Equal(application.Pending, got.Status())
	suite.Equal(0, got.Bid().ProposedPrice().Cmp(price))
	suite.Require().NotNil(got.Bid().ProposedDurationDays())
	suite.Equal(3, *got.Bid().ProposedDurationDays())
	suite.Equal("Can start tomorrow", got.Bid().Message())
	suite.True(from.Equal(*got.Bid().AvailableFrom()))
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestAdd_SecondApplicationOfExecutor_Conflicts() {
	ctx := context.Background()
	o := suite.addOrder()
	executorID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newApplication(o, executorID)))

	err := suite.repository.Add(ctx, suite.newApplication(o, executorID))
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestUpdateIfStatus_OneAcceptedPerOrder() {
	ctx := context.Background()
	o := suite.addOrder()
	first := suite.newApplication(o, kernel.NewUUID())
	second := suite.newApplication(o, kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.Require().NoError(first.Accept(suite.now))
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, first, application.Pending))

	suite.Require().NoError(second.Accept(suite.now))
	err := suite.repository.UpdateIfStatus(ctx, second, application.Pending)
	suite.ErrorIs(err, errs.ErrConflict)

	got, err := suite.repository.Get(ctx, second.ID())
	suite.Require().NoError(err)
	suite.Equal(application.Pending, got.Status())
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestUpdateIfStatus_StaleStatus_Conflicts() {
	ctx := context.Background()
	o := suite.addOrder()
	app := suite.newApplication(o, kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, app))

	stale, err := suite.repository.Get(ctx, app.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(app.Withdraw(suite.now))
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, app, application.Pending))

	suite.Require().NoError(stale.Reject("", suite.now))
	err = suite.repository.UpdateIfStatus(ctx, stale, application.Pending)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestFindByOrderAndExecutor() {
	ctx := context.Background()
	o := suite.addOrder()
	executorID := kernel.NewUUID()
	app := suite.newApplication(o, executorID)
	suite.Require().NoError(suite.repository.Add(ctx, app))

	got, err := suite.repository.FindByOrderAndExecutor(ctx, o.ID(), executorID)
	suite.Require().NoError(err)
	suite.Equal(app.ID(), got.ID())

	_, err = suite.repository.FindByOrderAndExecutor(ctx, o.ID(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestListByOrder_OldestFirst() {
	ctx := context.Background()
	o := suite.addOrder()

	var want []kernel.UUID
	for i := range 3 {
		price, err := kernel.MoneyFromInt(int64(100 * (i + 1)))
		suite.Require().NoError(err)
		bid, err := application.NewBid(price, nil, "", nil)
		suite.Require().NoError(err)
		app, err := application.NewApplication(kernel.NewUUID(), o.ID(), kernel.NewUUID(), bid, suite.now.Add(time.Duration(i)*time.Second))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, app))
		want = append(want, app.ID())
	}

	got, err := suite.repository.ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	for i, a := range got {
		suite.Equal(want[i], a.ID())
	}
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestListAppliedOrders_JoinsCategory() {
	ctx := context.Background()
	executorID := kernel.NewUUID()
	first := suite.addOrder()
	second := suite.addOrder()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newApplication(first, executorID)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newApplication(second, executorID)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newApplication(second, kernel.NewUUID())))

	got, err := suite.repository.ListAppliedOrders(ctx, executorID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]ports.AppliedOrder{
		{OrderID: first.ID(), CategoryID: first.CategoryID()},
		{OrderID: second.ID(), CategoryID: second.CategoryID()},
	}, got)
}

func (suite *ApplicationRepositoryIntegrationTestSuite) addOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Details{
		Title:      "Move a sofa",
		CategoryID: kernel.NewUUID(),
		Urgency:    order.UrgencyMedium,
		PriceType:  order.PriceTypeFixed,
	}, true, suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *ApplicationRepositoryIntegrationTestSuite) newApplication(o *order.Order, executorID kernel.UUID) *application.Application {
	price, err := kernel.MoneyFromInt(500)
	suite.Require().NoError(err)
	bid, err := application.NewBid(price, nil, "", nil)
	suite.Require().NoError(err)
	app, err := application.NewApplication(kernel.NewUUID(), o.ID(), executorID, bid, suite.now)
	suite.Require().NoError(err)
	return app
}

func TestApplicationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationRepositoryIntegrationTestSuite))
}
