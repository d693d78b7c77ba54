package http

import (
	"workmarket/internal/core/application/usecases/commands"
	"workmarket/internal/core/application/usecases/queries"
	"workmarket/internal/generated/servers"

	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the write use cases exposed over HTTP.
type CommandHandlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	UpdateOrderStatus   commands.UpdateOrderStatusCommandHandler
	CompleteOrder       commands.CompleteOrderCommandHandler
	CreateApplication   commands.CreateApplicationCommandHandler
	AcceptApplication   commands.AcceptApplicationCommandHandler
	RejectApplication   commands.RejectApplicationCommandHandler
	WithdrawApplication commands.WithdrawApplicationCommandHandler
}

// QueryHandlers groups the read use cases exposed over HTTP.
type QueryHandlers struct {
	ListOrders              queries.ListOrdersQueryHandler
	GetOrder                queries.GetOrderQueryHandler
	ListOrderApplications   queries.ListOrderApplicationsQueryHandler
	GetRecommendedOrders    queries.GetRecommendedOrdersQueryHandler
	GetRecommendedExecutors queries.GetRecommendedExecutorsQueryHandler
	FindNearbyOrders        queries.FindNearbyOrdersQueryHandler
	FindNearbyExecutors     queries.FindNearbyExecutorsQueryHandler
}

// Server implements servers.ServerInterface.
// It translates wire types to commands and queries and renders their results.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	logger   *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, logger *zap.Logger) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		logger:   logger,
	}
}
