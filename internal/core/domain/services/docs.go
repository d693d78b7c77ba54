// Package services provides domain services that work across the Order,
// Application and executor Profile models. None of them touch storage: callers
// load the data, the services decide, and callers persist the result.
//
// The package includes:
//   - ApplicationArbiter: submit, accept, reject and withdraw applications
//   - OrderRanker: recommended orders for an executor (Score, PreferredCategories)
//   - ExecutorMatcher: executors for an order and executors near a point
//   - NearbyOrders: radius search over orders
package services
