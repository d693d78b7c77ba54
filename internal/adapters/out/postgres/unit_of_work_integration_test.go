package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "workmarket/internal/adapters/out/postgres"
	"workmarket/internal/adapters/out/postgres/pgtest"
	"workmarket/internal/core/application/usecases/commands"
	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/core/ports"
	"workmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises transactions across the order and
// application repositories against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := createOpenOrder(suite.T())
	app := createApplication(suite.T(), o)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.ApplicationRepository().Add(ctx, app))
	suite.Require().NoError(uow.OrderRepository().IncrementApplications(ctx, o.ID()))

	tracked := uow.(*postgres_adapter.GormUnitOfWork).TrackedIDs()
	suite.Equal([]kernel.UUID{o.ID(), app.ID()}, tracked)

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	got, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(1, got.ApplicationsCount())

	apps, err := fresh.ApplicationRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(apps, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := createOpenOrder(suite.T())
	app := createApplication(suite.T(), o)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.ApplicationRepository().Add(ctx, app))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(uow.(*postgres_adapter.GormUnitOfWork).TrackedIDs())

	fresh := suite.factory.Create()
	_, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.ApplicationRepository().Get(ctx, app.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Isolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := createOpenOrder(suite.T())
	order2 := createOpenOrder(suite.T())

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = fresh.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err)
}

// Two customers' requests race to accept different applications of the same
// order. Exactly one wins; the loser gets a conflict and changes nothing.
func (suite *UnitOfWorkIntegrationTestSuite) TestAcceptApplication_ConcurrentAcceptsAssignOnce() {
	ctx := context.Background()
	o := createOpenOrder(suite.T())

	setup := suite.factory.Create()
	suite.Require().NoError(setup.OrderRepository().Add(ctx, o))
	apps := make([]*application.Application, 0, 4)
	for range 4 {
		app := createApplication(suite.T(), o)
		suite.Require().NoError(setup.ApplicationRepository().Add(ctx, app))
		apps = append(apps, app)
	}

	handler := commands.NewAcceptApplicationCommandHandler(uowFactory(suite.factory.Create))

	results := make([]error, len(apps))
	var g errgroup.Group
	for i, app := range apps {
		g.Go(func() error {
			cmd, err := commands.NewAcceptApplicationCommand(o.CustomerID(), app.ID())
			if err != nil {
				return err
			}
			_, results[i] = handler.Handle(ctx, cmd)
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	var winners int
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		suite.True(errors.Is(err, errs.ErrConflict), "unexpected error: %v", err)
	}
	suite.Equal(1, winners)

	fresh := suite.factory.Create()
	got, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, got.Status())
	suite.Require().NotNil(got.ExecutorID())

	stored, err := fresh.ApplicationRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	var accepted, rejected int
	for _, a := range stored {
		switch a.Status() {
		case application.Accepted:
			accepted++
			suite.Equal(*got.ExecutorID(), a.ExecutorID())
		case application.Rejected:
			rejected++
			suite.Equal(application.OtherExecutorSelectedReason, a.RejectionReason())
		}
	}
	suite.Equal(1, accepted)
	suite.Equal(len(apps)-1, rejected)
}

type uowFactory func() ports.UnitOfWork

func (f uowFactory) Create() commands.UoW {
	return f()
}

func createOpenOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Details{
		Title:      "Hang a chandelier",
		CategoryID: kernel.NewUUID(),
		Urgency:    order.UrgencyHigh,
		PriceType:  order.PriceTypeNegotiable,
	}, true, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func createApplication(t *testing.T, o *order.Order) *application.Application {
	t.Helper()
	price, err := kernel.MoneyFromInt(900)
	if err != nil {
		t.Fatal(err)
	}
	bid, err := application.NewBid(price, nil, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	app, err := application.NewApplication(kernel.NewUUID(), o.ID(), kernel.NewUUID(), bid, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		t.Fatal(err)
	}
	return app
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
