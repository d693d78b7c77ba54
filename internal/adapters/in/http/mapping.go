package http

import (
	"strings"

	"workmarket/internal/core/application/usecases/queries"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/generated/servers"
	"workmarket/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func toKernelID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	k, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return k, nil
}

func toOptionalKernelID(name string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := toKernelID(name, *id)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func parseMoney(name, value string) (kernel.Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	money, err := kernel.NewMoney(amount)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return money, nil
}

func parseOptionalMoney(name string, value *string) (*kernel.Money, error) {
	if value == nil {
		return nil, nil
	}
	money, err := parseMoney(name, *value)
	if err != nil {
		return nil, err
	}
	return &money, nil
}

// parseLocation accepts both coordinates or neither.
func parseLocation(lat, lng *float64) (*kernel.Location, error) {
	switch {
	case lat == nil && lng == nil:
		return nil, nil
	case lat == nil:
		return nil, errs.NewValueIsRequiredError("latitude")
	case lng == nil:
		return nil, errs.NewValueIsRequiredError("longitude")
	}

	loc, err := kernel.NewLocation(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalAmount(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

func toOrder(v queries.OrderView) servers.Order {
	o := servers.Order{
		Id:                 v.ID.Bytes(),
		CustomerId:         v.CustomerID.Bytes(),
		CategoryId:         v.CategoryID.Bytes(),
		Title:              v.Title,
		Description:        optionalString(v.Description),
		Status:             v.Status.String(),
		Urgency:            v.Urgency.String(),
		PriceType:          v.PriceType.String(),
		BudgetFrom:         optionalAmount(v.BudgetFrom),
		BudgetTo:           optionalAmount(v.BudgetTo),
		AgreedPrice:        optionalAmount(v.AgreedPrice),
		Latitude:           v.Latitude,
		Longitude:          v.Longitude,
		Address:            optionalString(v.Address),
		ApplicationsCount:  v.ApplicationsCount,
		ViewsCount:         v.ViewsCount,
		IsPublished:        v.IsPublished,
		CustomerRating:     v.CustomerRating,
		CustomerReview:     optionalString(v.CustomerReview),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
		PreferredStartDate: v.PreferredStartDate,
		Deadline:           v.Deadline,
		ActualStartDate:    v.ActualStartDate,
		ActualEndDate:      v.ActualEndDate,
		DistanceKm:         v.DistanceKm,
		Score:              v.Score,
	}
	if v.ExecutorID != nil {
		id := openapi_types.UUID(v.ExecutorID.Bytes())
		o.ExecutorId = &id
	}
	return o
}

func toOrders(views []queries.OrderView) []servers.Order {
	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return response
}

func toApplication(v queries.ApplicationView) servers.Application {
	return servers.Application{
		Id:                   v.ID.Bytes(),
		OrderId:              v.OrderID.Bytes(),
		ExecutorId:           v.ExecutorID.Bytes(),
		Status:               v.Status.String(),
		ProposedPrice:        v.ProposedPrice.StringFixed(2),
		ProposedDurationDays: v.ProposedDurationDays,
		Message:              optionalString(v.Message),
		AvailableFrom:        v.AvailableFrom,
		RejectionReason:      optionalString(v.RejectionReason),
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}

func toExecutors(views []queries.ExecutorView) []servers.Executor {
	response := make([]servers.Executor, len(views))
	for i, v := range views {
		response[i] = servers.Executor{
			Id:              v.ID.Bytes(),
			UserId:          v.UserID.Bytes(),
			Latitude:        v.Latitude,
			Longitude:       v.Longitude,
			WorkRadiusKm:    v.WorkRadiusKm,
			Rating:          v.Rating,
			CompletedOrders: v.CompletedOrders,
			IsAvailable:     v.IsAvailable,
			IsPremium:       v.IsPremium,
			DistanceKm:      v.DistanceKm,
		}
	}
	return response
}
