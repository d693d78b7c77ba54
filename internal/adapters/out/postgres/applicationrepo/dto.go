// Package applicationrepo maps executor applications to the applications table.
package applicationrepo

import (
	"time"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ApplicationDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID       `gorm:"type:uuid;uniqueIndex:applications_order_executor_key"`
	ExecutorID           uuid.UUID       `gorm:"type:uuid;uniqueIndex:applications_order_executor_key"`
	Status               int             `gorm:"type:smallint"`
	ProposedPrice        decimal.Decimal `gorm:"type:numeric"`
	ProposedDurationDays *int
	Message              string
	AvailableFrom        *time.Time
	RejectionReason      string
	CreatedAt            time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime:false"`
}

func (ApplicationDTO) TableName() string {
	return "applications"
}

func fromDomain(a *application.Application) ApplicationDTO {
	bid := a.Bid()
	return ApplicationDTO{
		ID:                   a.ID().Bytes(),
		OrderID:              a.OrderID().Bytes(),
		ExecutorID:           a.ExecutorID().Bytes(),
		Status:               int(a.Status()),
		ProposedPrice:        bid.ProposedPrice().Amount(),
		ProposedDurationDays: bid.ProposedDurationDays(),
		Message:              bid.Message(),
		AvailableFrom:        bid.AvailableFrom(),
		RejectionReason:      a.RejectionReason(),
		CreatedAt:            a.CreatedAt(),
		UpdatedAt:            a.UpdatedAt(),
	}
}

func toDomain(dto ApplicationDTO) (*application.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	executorID, err := kernel.UUIDFromBytes(dto.ExecutorID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.ProposedPrice)
	if err != nil {
		return nil, err
	}
	bid, err := application.NewBid(price, dto.ProposedDurationDays, dto.Message, dto.AvailableFrom)
	if err != nil {
		return nil, err
	}

	return application.RestoreApplication(application.Snapshot{
		ID:              id,
		OrderID:         orderID,
		ExecutorID:      executorID,
		Status:          application.Status(dto.Status),
		Bid:             bid,
		RejectionReason: dto.RejectionReason,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
