package services_test

import (
	"math"
	"testing"
	"time"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/executor"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	now         = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	kmPerDegree = kernel.EarthRadiusKm * math.Pi / 180
)

type orderOpts struct {
	customerID kernel.UUID
	categoryID kernel.UUID
	urgency    order.Urgency
	budgetFrom int64
	budgetTo   int64
	location   *kernel.Location
	createdAt  time.Time
	publish    bool
}

func newOrder(t *testing.T, opts orderOpts) *order.Order {
	t.Helper()
	if opts.customerID.Validate() != nil {
		opts.customerID = kernel.NewUUID()
	}
	if opts.categoryID.Validate() != nil {
		opts.categoryID = kernel.NewUUID()
	}
	if opts.urgency == order.UrgencyUnknown {
		opts.urgency = order.UrgencyLow
	}
	if opts.createdAt.IsZero() {
		opts.createdAt = now
	}

	d := order.Details{
		Title:      "Paint the fence",
		CategoryID: opts.categoryID,
		Urgency:    opts.urgency,
		PriceType:  order.PriceTypeFixed,
		Location:   opts.location,
	}
	if opts.budgetFrom > 0 {
		m, err := kernel.MoneyFromInt(opts.budgetFrom)
		require.NoError(t, err)
		d.BudgetFrom = &m
	}
	if opts.budgetTo > 0 {
		m, err := kernel.MoneyFromInt(opts.budgetTo)
		require.NoError(t, err)
		d.BudgetTo = &m
	}

	o, err := order.NewOrder(kernel.NewUUID(), opts.customerID, d, opts.publish, opts.createdAt)
	require.NoError(t, err)
	return o
}

func openOrder(t *testing.T) *order.Order {
	t.Helper()
	return newOrder(t, orderOpts{publish: true})
}

func newApplication(t *testing.T, o *order.Order, executorID kernel.UUID, price int64) *application.Application {
	t.Helper()
	m, err := kernel.MoneyFromInt(price)
	require.NoError(t, err)
	bid, err := application.NewBid(m, nil, "", nil)
	require.NoError(t, err)
	a, err := application.NewApplication(kernel.NewUUID(), o.ID(), executorID, bid, now)
	require.NoError(t, err)
	return a
}

func loc(t *testing.T, lat, lng float64) *kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return &l
}

type profileOpts struct {
	userID          kernel.UUID
	location        *kernel.Location
	radiusKm        float64
	rating          float64
	completedOrders int
	unavailable     bool
	premium         bool
}

func newProfile(t *testing.T, opts profileOpts) *executor.Profile {
	t.Helper()
	if opts.userID.Validate() != nil {
		opts.userID = kernel.NewUUID()
	}
	p, err := executor.RestoreProfile(executor.Snapshot{
		ID:              kernel.NewUUID(),
		UserID:          opts.userID,
		Location:        opts.location,
		WorkRadiusKm:    opts.radiusKm,
		Rating:          opts.rating,
		CompletedOrders: opts.completedOrders,
		IsAvailable:     !opts.unavailable,
		IsPremium:       opts.premium,
	})
	require.NoError(t, err)
	return p
}
