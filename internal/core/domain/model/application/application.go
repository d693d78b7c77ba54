package application

import (
	"errors"
	"strings"
	"time"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

const (
	DefaultRejectionReason      = "rejected by customer"
	OtherExecutorSelectedReason = "other executor selected"
)

var ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication constructor")

// Snapshot is the persisted state of an application.
type Snapshot struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	ExecutorID      kernel.UUID
	Status          Status
	Bid             Bid
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Application is an executor's bid on one order.
type Application struct {
	id              kernel.UUID
	orderID         kernel.UUID
	executorID      kernel.UUID
	status          Status
	bid             Bid
	rejectionReason string
	createdAt       time.Time
	updatedAt       time.Time
	guard           guard.ConstructorGuard
}

// NewApplication creates a pending application.
func NewApplication(id, orderID, executorID kernel.UUID, bid Bid, now time.Time) (*Application, error) {
	a := &Application{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setIDs(id, orderID, executorID),
		a.setBid(bid),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func RestoreApplication(s Snapshot) (*Application, error) {
	a := &Application{
		rejectionReason: s.RejectionReason,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setIDs(s.ID, s.OrderID, s.ExecutorID),
		a.setBid(s.Bid),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	a.status = s.Status

	return a, nil
}

func (a *Application) Validate() error {
	if a == nil {
		return ErrApplicationIsNotConstructed
	}
	return a.guard.Validate(ErrApplicationIsNotConstructed)
}

func (a *Application) ID() kernel.UUID { return a.id }
func (a *Application) OrderID() kernel.UUID { return a.orderID }
func (a *Application) ExecutorID() kernel.UUID { return a.executorID }
func (a *Application) Status() Status { return a.status }
func (a *Application) Bid() Bid { return a.bid }
func (a *Application) RejectionReason() string { return a.rejectionReason }
func (a *Application) CreatedAt() time.Time { return a.createdAt }
func (a *Application) UpdatedAt() time.Time { return a.updatedAt }

func (a *Application) IsSubmittedBy(executorID kernel.UUID) bool {
	return a.executorID.IsEqual(executorID)
}

// Accept marks the application as the winning bid.
func (a *Application) Accept(now time.Time) error {
	if err := a.ensurePending("only pending applications can be accepted"); err != nil {
		return err
	}
	a.status = Accepted
	a.updatedAt = now
	return nil
}

// Reject records the customer's refusal. An empty reason becomes DefaultRejectionReason.
func (a *Application) Reject(reason string, now time.Time) error {
	if err := a.ensurePending("only pending applications can be rejected"); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectionReason
	}
	a.status = Rejected
	a.rejectionReason = reason
	a.updatedAt = now
	return nil
}

// Withdraw is the executor taking the bid back.
func (a *Application) Withdraw(now time.Time) error {
	if err := a.ensurePending("only pending applications can be withdrawn"); err != nil {
		return err
	}
	a.status = Withdrawn
	a.updatedAt = now
	return nil
}

func (a *Application) ensurePending(reason string) error {
	if a.status != Pending {
		return errs.NewInvalidStateError("application", a.status, reason)
	}
	return nil
}

func (a *Application) setIDs(id, orderID, executorID kernel.UUID) error {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if err := executorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("executorId", err))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	a.id, a.orderID, a.executorID = id, orderID, executorID
	return nil
}

func (a *Application) setBid(bid Bid) error {
	if err := bid.Validate(); err != nil {
		return err
	}
	a.bid = bid
	return nil
}
