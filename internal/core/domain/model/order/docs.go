// Package order provides the Order aggregate of the marketplace and the state
// machine that governs its status.
//
// The package includes:
//   - Order: the aggregate root holding budget, location, urgency, assignment and counters
//   - Status: the closed status enumeration and the pure Transition function
//   - ActorRole: who asks for a transition (customer, executor or the system)
//   - Urgency and PriceType: the caller-declared order attributes used by ranking
//
// Key business rules:
//   - Orders start as DRAFT (unpublished) or OPEN (published)
//   - OPEN -> IN_PROGRESS happens only when an application is accepted (RoleSystem)
//   - COMPLETED and CANCELLED are terminal; DISPUTED is a side branch
//   - An executor is present exactly when the order has an accepted application
package order
