package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

const (
	MaxTitleLength  = 200
	MaxReviewLength = 2000
	MinRating       = 1
	MaxRating       = 5
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details are the customer-provided attributes of an order. They are fixed at
// creation time.
type Details struct {
	Title              string
	Description        string
	CategoryID         kernel.UUID
	Urgency            Urgency
	PriceType          PriceType
	BudgetFrom         *kernel.Money
	BudgetTo           *kernel.Money
	Location           *kernel.Location
	Address            string
	PreferredStartDate *time.Time
	Deadline           *time.Time
}

// Snapshot is the full persisted state of an order, used by RestoreOrder.
type Snapshot struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	ExecutorID        *kernel.UUID
	Details           Details
	Status            Status
	AgreedPrice       *kernel.Money
	ApplicationsCount int
	ViewsCount        int
	IsPublished       bool
	CustomerRating    *int
	CustomerReview    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ActualStartDate   *time.Time
	ActualEndDate     *time.Time
}

// Order is the aggregate root of the marketplace. A customer creates it, executors
// apply to it, and its status follows the Transition table.
//
// Order follows these invariants:
//   - Must have a valid id, customer and category
//   - budgetFrom <= budgetTo when both are present
//   - An executor is present exactly in the statuses reached through acceptance
//     (and possibly in Cancelled, when cancelled after acceptance)
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	executorID  *kernel.UUID
	details     Details
	status      Status
	agreedPrice *kernel.Money

	applicationsCount int
	viewsCount        int
	isPublished       bool

	customerRating *int
	customerReview string

	createdAt       time.Time
	updatedAt       time.Time
	actualStartDate *time.Time
	actualEndDate   *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order owned by customerID. The order starts as Open and
// published when publish is true, and as an unpublished Draft otherwise.
//
// Validation is performed against now: the preferred start date and the deadline
// must not be in the past, and the deadline must not precede the preferred start.
//
// Example:
//
//	from, _ := kernel.MoneyFromInt(100000)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, order.Details{
//	    Title:      "Fix the sink",
//	    CategoryID: plumbingID,
//	    Urgency:    order.UrgencyHigh,
//	    PriceType:  order.PriceTypeFixed,
//	    BudgetFrom: &from,
//	}, true, time.Now())
func NewOrder(id, customerID kernel.UUID, details Details, publish bool, now time.Time) (*Order, error) {
	status := Draft
	if publish {
		status = Open
	}

	order := &Order{
		status:      status,
		isPublished: publish,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customerID),
		order.setDetails(details),
		validateSchedule(details, now),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from its persisted state. Schedule checks against
// the current time are skipped; structural invariants are still enforced.
func RestoreOrder(s Snapshot) (*Order, error) {
	order := &Order{
		status:            s.Status,
		agreedPrice:       s.AgreedPrice,
		applicationsCount: s.ApplicationsCount,
		viewsCount:        s.ViewsCount,
		isPublished:       s.IsPublished,
		customerRating:    s.CustomerRating,
		customerReview:    s.CustomerReview,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		actualStartDate:   s.ActualStartDate,
		actualEndDate:     s.ActualEndDate,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(s.ID),
		order.setCustomer(s.CustomerID),
		order.setDetails(s.Details),
		s.Status.Validate(),
		order.setExecutor(s.ExecutorID),
	); err != nil {
		return nil, err
	}

	if err := s.Status.ValidateCanHaveExecutor(s.ExecutorID != nil); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) CustomerID() kernel.UUID { return o.customerID }
func (o *Order) ExecutorID() *kernel.UUID { return o.executorID }
func (o *Order) Details() Details { return o.details }
func (o *Order) Title() string { return o.details.Title }
func (o *Order) Description() string { return o.details.Description }
func (o *Order) CategoryID() kernel.UUID { return o.details.CategoryID }
func (o *Order) Urgency() Urgency { return o.details.Urgency }
func (o *Order) PriceType() PriceType { return o.details.PriceType }
func (o *Order) BudgetFrom() *kernel.Money { return o.details.BudgetFrom }
func (o *Order) BudgetTo() *kernel.Money { return o.details.BudgetTo }
func (o *Order) Location() *kernel.Location { return o.details.Location }
func (o *Order) Address() string { return o.details.Address }
func (o *Order) PreferredStartDate() *time.Time { return o.details.PreferredStartDate }
func (o *Order) Deadline() *time.Time { return o.details.Deadline }
func (o *Order) Status() Status { return o.status }
func (o *Order) AgreedPrice() *kernel.Money { return o.agreedPrice }
func (o *Order) ApplicationsCount() int { return o.applicationsCount }
func (o *Order) ViewsCount() int { return o.viewsCount }
func (o *Order) IsPublished() bool { return o.isPublished }
func (o *Order) CustomerRating() *int { return o.customerRating }
func (o *Order) CustomerReview() string { return o.customerReview }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
func (o *Order) ActualStartDate() *time.Time { return o.actualStartDate }
func (o *Order) ActualEndDate() *time.Time { return o.actualEndDate }

// RoleOf returns the relationship of userID to the order. Users that are neither
// the customer nor the assigned executor get RoleUnknown.
func (o *Order) RoleOf(userID kernel.UUID) ActorRole {
	switch {
	case o.customerID.IsEqual(userID):
		return RoleCustomer
	case o.executorID != nil && o.executorID.IsEqual(userID):
		return RoleExecutor
	default:
		return RoleUnknown
	}
}

// IsOwnedBy reports whether userID is the order's customer.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.customerID.IsEqual(userID)
}

// IsVisibleToExecutors reports whether the order is open and published, the
// only state in which it is listed and accepts applications.
func (o *Order) IsVisibleToExecutors() bool {
	return o.status == Open && o.isPublished
}

// ValidateAcceptsApplications returns an InvalidStateError unless the order is Open.
func (o *Order) ValidateAcceptsApplications() error {
	if o.status != Open {
		return errs.NewInvalidStateError("order", o.status, "it does not accept applications")
	}
	return nil
}

// ChangeStatus performs a transition requested directly by actorID.
//
// The actor's role is derived from the order: the customer or the assigned
// executor. Anyone else gets a ForbiddenError. Disallowed moves return an
// *InvalidTransitionError. Acceptance (Open -> InProgress) cannot be requested
// here; use AssignExecutor.
func (o *Order) ChangeStatus(actorID kernel.UUID, requested Status, now time.Time) error {
	role := o.RoleOf(actorID)
	if role == RoleUnknown {
		return errs.NewForbiddenError(actorID, "change status of order "+o.id.String())
	}

	newStatus, err := Transition(o.status, requested, role)
	if err != nil {
		return err
	}

	o.apply(newStatus, now)
	return nil
}

// AssignExecutor moves the order to InProgress as the effect of accepting an
// application: executor and agreed price are recorded and the work starts now.
func (o *Order) AssignExecutor(executorID kernel.UUID, price kernel.Money, now time.Time) error {
	if err := errors.Join(executorID.Validate(), price.Validate()); err != nil {
		return err
	}
	if o.customerID.IsEqual(executorID) {
		return errs.NewForbiddenError(executorID, "execute own order")
	}

	newStatus, err := Transition(o.status, InProgress, RoleSystem)
	if err != nil {
		return err
	}

	o.executorID = &executorID
	o.agreedPrice = &price
	o.actualStartDate = &now
	o.apply(newStatus, now)
	return nil
}

// Complete confirms the work on behalf of the customer and records the rating
// (1..5) and an optional review.
//
// Business rules:
//   - Only the customer may complete the order (ForbiddenError otherwise)
//   - The order must be WaitingConfirmation (InvalidStateError otherwise)
func (o *Order) Complete(customerID kernel.UUID, rating int, review string, now time.Time) error {
	if !o.IsOwnedBy(customerID) {
		return errs.NewForbiddenError(customerID, "complete order "+o.id.String())
	}
	if o.status != WaitingConfirmation {
		return errs.NewInvalidStateError("order", o.status, "only orders waiting for confirmation can be completed")
	}
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	review = strings.TrimSpace(review)
	if utf8.RuneCountInString(review) > MaxReviewLength {
		return errs.NewValueIsInvalidErrorWithCause("review", fmt.Errorf("longer than %d characters", MaxReviewLength))
	}

	newStatus, err := Transition(o.status, Completed, RoleCustomer)
	if err != nil {
		return err
	}

	o.customerRating = &rating
	o.customerReview = review
	o.apply(newStatus, now)
	return nil
}

// IsExpired reports whether a published open order has passed its deadline.
func (o *Order) IsExpired(now time.Time) bool {
	return o.IsVisibleToExecutors() && o.details.Deadline != nil && o.details.Deadline.Before(now)
}

// Unpublish hides the order from listings without changing its status.
func (o *Order) Unpublish(now time.Time) {
	if !o.isPublished {
		return
	}
	o.isPublished = false
	o.updatedAt = now
}

func (o *Order) apply(newStatus Status, now time.Time) {
	switch newStatus {
	case Open:
		o.isPublished = true
	case Completed:
		o.actualEndDate = &now
	case Cancelled:
		o.isPublished = false
	}
	o.status = newStatus
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setExecutor(executorID *kernel.UUID) error {
	if executorID == nil {
		return nil
	}
	if err := executorID.Validate(); err != nil {
		return err
	}
	o.executorID = executorID
	return nil
}

func (o *Order) setDetails(d Details) error {
	d.Title = strings.TrimSpace(d.Title)

	var errList []error
	if d.Title == "" {
		errList = append(errList, errs.NewValueIsRequiredError("title"))
	} else if utf8.RuneCountInString(d.Title) > MaxTitleLength {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("title", fmt.Errorf("longer than %d characters", MaxTitleLength)))
	}
	if err := d.CategoryID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("categoryId", err))
	}
	errList = append(errList, d.Urgency.Validate(), d.PriceType.Validate())

	if d.BudgetFrom != nil {
		errList = append(errList, d.BudgetFrom.Validate())
	}
	if d.BudgetTo != nil {
		errList = append(errList, d.BudgetTo.Validate())
	}
	if d.BudgetFrom != nil && d.BudgetTo != nil && d.BudgetFrom.Cmp(*d.BudgetTo) > 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"budget",
			fmt.Errorf("budgetFrom %s is greater than budgetTo %s", d.BudgetFrom, d.BudgetTo),
		))
	}
	if d.Location != nil {
		errList = append(errList, d.Location.Validate())
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}
	o.details = d
	return nil
}

func validateSchedule(d Details, now time.Time) error {
	var errList []error
	if d.PreferredStartDate != nil && d.PreferredStartDate.Before(now) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("preferredStartDate", errors.New("is in the past")))
	}
	if d.Deadline != nil && d.Deadline.Before(now) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("deadline", errors.New("is in the past")))
	}
	if d.PreferredStartDate != nil && d.Deadline != nil && d.Deadline.Before(*d.PreferredStartDate) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("deadline", errors.New("is before preferredStartDate")))
	}
	return errors.Join(errList...)
}
