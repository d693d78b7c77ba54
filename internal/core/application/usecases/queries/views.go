// Package queries contains read operations. Query handlers never change
// aggregates; the only write they issue is the atomic view counter.
package queries

import (
	"time"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/executor"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderView is the read representation of an order returned by queries and,
// through NewOrderView, by command endpoints.
type OrderView struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	ExecutorID         *kernel.UUID
	CategoryID         kernel.UUID
	Title              string
	Description        string
	Status             order.Status
	Urgency            order.Urgency
	PriceType          order.PriceType
	BudgetFrom         *decimal.Decimal
	BudgetTo           *decimal.Decimal
	AgreedPrice        *decimal.Decimal
	Latitude           *float64
	Longitude          *float64
	Address            string
	ApplicationsCount  int
	ViewsCount         int
	IsPublished        bool
	CustomerRating     *int
	CustomerReview     string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	PreferredStartDate *time.Time
	Deadline           *time.Time
	ActualStartDate    *time.Time
	ActualEndDate      *time.Time

	// DistanceKm and Score are filled by geo and recommendation queries.
	DistanceKm *float64
	Score      *int
}

func NewOrderView(o *order.Order) OrderView {
	v := OrderView{
		ID:                 o.ID(),
		CustomerID:         o.CustomerID(),
		ExecutorID:         o.ExecutorID(),
		CategoryID:         o.CategoryID(),
		Title:              o.Title(),
		Description:        o.Description(),
		Status:             o.Status(),
		Urgency:            o.Urgency(),
		PriceType:          o.PriceType(),
		BudgetFrom:         amount(o.BudgetFrom()),
		BudgetTo:           amount(o.BudgetTo()),
		AgreedPrice:        amount(o.AgreedPrice()),
		Address:            o.Address(),
		ApplicationsCount:  o.ApplicationsCount(),
		ViewsCount:         o.ViewsCount(),
		IsPublished:        o.IsPublished(),
		CustomerRating:     o.CustomerRating(),
		CustomerReview:     o.CustomerReview(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		PreferredStartDate: o.PreferredStartDate(),
		Deadline:           o.Deadline(),
		ActualStartDate:    o.ActualStartDate(),
		ActualEndDate:      o.ActualEndDate(),
	}
	if loc := o.Location(); loc != nil {
		lat, lng := loc.Latitude(), loc.Longitude()
		v.Latitude, v.Longitude = &lat, &lng
	}
	return v
}

type ApplicationView struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	ExecutorID           kernel.UUID
	Status               application.Status
	ProposedPrice        decimal.Decimal
	ProposedDurationDays *int
	Message              string
	AvailableFrom        *time.Time
	RejectionReason      string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func NewApplicationView(a *application.Application) ApplicationView {
	return ApplicationView{
		ID:                   a.ID(),
		OrderID:              a.OrderID(),
		ExecutorID:           a.ExecutorID(),
		Status:               a.Status(),
		ProposedPrice:        a.Bid().ProposedPrice().Amount(),
		ProposedDurationDays: a.Bid().ProposedDurationDays(),
		Message:              a.Bid().Message(),
		AvailableFrom:        a.Bid().AvailableFrom(),
		RejectionReason:      a.RejectionReason(),
		CreatedAt:            a.CreatedAt(),
		UpdatedAt:            a.UpdatedAt(),
	}
}

type ExecutorView struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Latitude        *float64
	Longitude       *float64
	WorkRadiusKm    float64
	Rating          float64
	CompletedOrders int
	IsAvailable     bool
	IsPremium       bool
	DistanceKm      *float64
}

func NewExecutorView(p *executor.Profile, distanceKm *float64) ExecutorView {
	v := ExecutorView{
		ID:              p.ID(),
		UserID:          p.UserID(),
		WorkRadiusKm:    p.WorkRadiusKm(),
		Rating:          p.Rating(),
		CompletedOrders: p.CompletedOrders(),
		IsAvailable:     p.IsAvailable(),
		IsPremium:       p.IsPremium(),
		DistanceKm:      distanceKm,
	}
	if loc := p.Location(); loc != nil {
		lat, lng := loc.Latitude(), loc.Longitude()
		v.Latitude, v.Longitude = &lat, &lng
	}
	return v
}

// Page is one page of a paginated listing. Page numbers start at 1.
type Page[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}

func amount(m *kernel.Money) *decimal.Decimal {
	if m == nil {
		return nil
	}
	a := m.Amount()
	return &a
}
