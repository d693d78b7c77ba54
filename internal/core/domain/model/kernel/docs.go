// Package kernel provides the domain primitives shared by the order, application
// and executor models.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Location: a validated latitude/longitude pair with great-circle distance
//   - Money: a non-negative amount backed by github.com/shopspring/decimal
//
// The primitives are immutable. Their zero values are invalid and fail Validate,
// so a forgotten constructor call is caught at the aggregate boundary.
package kernel
