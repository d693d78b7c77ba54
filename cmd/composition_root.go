package cmd

import (
	"workmarket/internal/adapters/in/http"
	"workmarket/internal/adapters/out/catalog"
	"workmarket/internal/adapters/out/postgres"
	"workmarket/internal/adapters/out/postgres/applicationrepo"
	"workmarket/internal/adapters/out/postgres/categoryrepo"
	"workmarket/internal/adapters/out/postgres/executorrepo"
	"workmarket/internal/adapters/out/postgres/orderrepo"
	"workmarket/internal/core/application/usecases/commands"
	"workmarket/internal/core/application/usecases/queries"
	"workmarket/internal/core/ports"
	"workmarket/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryForCommands() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// CategoryChecker uses the catalog service when CATALOG_URL is set and the
// categories table otherwise.
func (c *CompositionRoot) CategoryChecker() ports.CategoryChecker {
	if c.config.CatalogURL != "" {
		return catalog.NewClient(catalog.Config{
			BaseURL: c.config.CatalogURL,
			Timeout: c.config.CatalogTimeout,
		}, c.logger)
	}
	return categoryrepo.NewGormCategoryChecker(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.CategoryChecker())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateExpireOrdersCommandHandler() commands.ExpireOrdersCommandHandler {
	return commands.NewExpireOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateApplicationCommandHandler() commands.CreateApplicationCommandHandler {
	return commands.NewCreateApplicationCommandHandler(c.uowFactoryForCommands())
}

func (c *CompositionRoot) CreateAcceptApplicationCommandHandler() commands.AcceptApplicationCommandHandler {
	return commands.NewAcceptApplicationCommandHandler(c.uowFactoryForCommands())
}

func (c *CompositionRoot) CreateRejectApplicationCommandHandler() commands.RejectApplicationCommandHandler {
	return commands.NewRejectApplicationCommandHandler(c.uowFactoryForCommands())
}

func (c *CompositionRoot) CreateWithdrawApplicationCommandHandler() commands.WithdrawApplicationCommandHandler {
	return commands.NewWithdrawApplicationCommandHandler(c.uowFactoryForCommands())
}

// Query handlers read outside a transaction through repositories bound to the
// plain connection.
func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, nil)
}

func (c *CompositionRoot) applicationRepository() ports.ApplicationRepository {
	return applicationrepo.NewGormApplicationRepository(c.gormDB, nil)
}

func (c *CompositionRoot) profileReader() ports.ExecutorProfileReader {
	return executorrepo.NewGormProfileReader(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateListOrderApplicationsQueryHandler() queries.ListOrderApplicationsQueryHandler {
	return queries.NewListOrderApplicationsQueryHandler(c.orderRepository(), c.applicationRepository())
}

func (c *CompositionRoot) CreateGetRecommendedOrdersQueryHandler() queries.GetRecommendedOrdersQueryHandler {
	return queries.NewGetRecommendedOrdersQueryHandler(
		c.profileReader(), c.orderRepository(), c.applicationRepository(), c.config.DefaultWorkRadiusKm,
	)
}

func (c *CompositionRoot) CreateGetRecommendedExecutorsQueryHandler() queries.GetRecommendedExecutorsQueryHandler {
	return queries.NewGetRecommendedExecutorsQueryHandler(
		c.orderRepository(), c.applicationRepository(), c.profileReader(), c.config.DefaultWorkRadiusKm,
	)
}

func (c *CompositionRoot) CreateFindNearbyOrdersQueryHandler() queries.FindNearbyOrdersQueryHandler {
	return queries.NewFindNearbyOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateFindNearbyExecutorsQueryHandler() queries.FindNearbyExecutorsQueryHandler {
	return queries.NewFindNearbyExecutorsQueryHandler(c.profileReader())
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		http.CommandHandlers{
			CreateOrder:         c.CreateCreateOrderCommandHandler(),
			UpdateOrderStatus:   c.CreateUpdateOrderStatusCommandHandler(),
			CompleteOrder:       c.CreateCompleteOrderCommandHandler(),
			CreateApplication:   c.CreateCreateApplicationCommandHandler(),
			AcceptApplication:   c.CreateAcceptApplicationCommandHandler(),
			RejectApplication:   c.CreateRejectApplicationCommandHandler(),
			WithdrawApplication: c.CreateWithdrawApplicationCommandHandler(),
		},
		http.QueryHandlers{
			ListOrders:              c.CreateListOrdersQueryHandler(),
			GetOrder:                c.CreateGetOrderQueryHandler(),
			ListOrderApplications:   c.CreateListOrderApplicationsQueryHandler(),
			GetRecommendedOrders:    c.CreateGetRecommendedOrdersQueryHandler(),
			GetRecommendedExecutors: c.CreateGetRecommendedExecutorsQueryHandler(),
			FindNearbyOrders:        c.CreateFindNearbyOrdersQueryHandler(),
			FindNearbyExecutors:     c.CreateFindNearbyExecutorsQueryHandler(),
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireOrdersCommandHandler(), c.config.OrderExpirySchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
