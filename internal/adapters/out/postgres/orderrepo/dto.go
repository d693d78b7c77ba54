// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Timestamps come from the aggregate,
// so GORM's automatic time tracking is disabled.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID  `gorm:"type:uuid;index"`
	ExecutorID         *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID         uuid.UUID  `gorm:"type:uuid;index"`
	Title              string     `gorm:"size:200"`
	Description        string
	Status             int              `gorm:"type:smallint"`
	Urgency            int              `gorm:"type:smallint"`
	PriceType          int              `gorm:"type:smallint"`
	BudgetFrom         *decimal.Decimal `gorm:"type:numeric"`
	BudgetTo           *decimal.Decimal `gorm:"type:numeric"`
	AgreedPrice        *decimal.Decimal `gorm:"type:numeric"`
	Latitude           *float64
	Longitude          *float64
	Address            string
	ApplicationsCount  int
	ViewsCount         int
	IsPublished        bool
	CustomerRating     *int `gorm:"type:smallint"`
	CustomerReview     string
	PreferredStartDate *time.Time
	Deadline           *time.Time
	ActualStartDate    *time.Time
	ActualEndDate      *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                 o.ID().Bytes(),
		CustomerID:         o.CustomerID().Bytes(),
		CategoryID:         o.CategoryID().Bytes(),
		Title:              o.Title(),
		Description:        o.Description(),
		Status:             int(o.Status()),
		Urgency:            int(o.Urgency()),
		PriceType:          int(o.PriceType()),
		BudgetFrom:         amount(o.BudgetFrom()),
		BudgetTo:           amount(o.BudgetTo()),
		AgreedPrice:        amount(o.AgreedPrice()),
		Address:            o.Address(),
		ApplicationsCount:  o.ApplicationsCount(),
		ViewsCount:         o.ViewsCount(),
		IsPublished:        o.IsPublished(),
		CustomerRating:     o.CustomerRating(),
		CustomerReview:     o.CustomerReview(),
		PreferredStartDate: o.PreferredStartDate(),
		Deadline:           o.Deadline(),
		ActualStartDate:    o.ActualStartDate(),
		ActualEndDate:      o.ActualEndDate(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
	if id := o.ExecutorID(); id != nil {
		raw := id.Bytes()
		dto.ExecutorID = &raw
	}
	if loc := o.Location(); loc != nil {
		lat, lng := loc.Latitude(), loc.Longitude()
		dto.Latitude, dto.Longitude = &lat, &lng
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	var executorID *kernel.UUID
	if dto.ExecutorID != nil {
		eID, executorErr := kernel.UUIDFromBytes((*dto.ExecutorID)[:])
		if executorErr != nil {
			return nil, executorErr
		}
		executorID = &eID
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	budgetFrom, err := money(dto.BudgetFrom)
	if err != nil {
		return nil, err
	}
	budgetTo, err := money(dto.BudgetTo)
	if err != nil {
		return nil, err
	}
	agreedPrice, err := money(dto.AgreedPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:         id,
		CustomerID: customerID,
		ExecutorID: executorID,
		Details: order.Details{
			Title:              dto.Title,
			Description:        dto.Description,
			CategoryID:         categoryID,
			Urgency:            order.Urgency(dto.Urgency),
			PriceType:          order.PriceType(dto.PriceType),
			BudgetFrom:         budgetFrom,
			BudgetTo:           budgetTo,
			Location:           location,
			Address:            dto.Address,
			PreferredStartDate: dto.PreferredStartDate,
			Deadline:           dto.Deadline,
		},
		Status:            order.Status(dto.Status),
		AgreedPrice:       agreedPrice,
		ApplicationsCount: dto.ApplicationsCount,
		ViewsCount:        dto.ViewsCount,
		IsPublished:       dto.IsPublished,
		CustomerRating:    dto.CustomerRating,
		CustomerReview:    dto.CustomerReview,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
		ActualStartDate:   dto.ActualStartDate,
		ActualEndDate:     dto.ActualEndDate,
	})
}

func amount(m *kernel.Money) *decimal.Decimal {
	if m == nil {
		return nil
	}
	a := m.Amount()
	return &a
}

func money(d *decimal.Decimal) (*kernel.Money, error) {
	if d == nil {
		return nil, nil
	}
	m, err := kernel.NewMoney(*d)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
