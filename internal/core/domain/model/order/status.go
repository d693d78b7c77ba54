package order

import (
	"fmt"
	"slices"
	"strings"

	"workmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions (actor in parentheses):
//
//	DRAFT ──(customer)──> OPEN ──(system: accept)──> IN_PROGRESS ──(executor)──> WAITING_CONFIRMATION
//	                       │                            │   ^                          │   │   │
//	                       │ (customer)                 │   └────────(customer)────────┘   │   │
//	                       v                            │ (customer, executor)   (customer) │   │ (customer, executor)
//	                   CANCELLED <──────────────────────┘                                 v   v
//	                                                                              COMPLETED   DISPUTED
//
// Status is persisted as its integer value.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Draft orders are visible to their customer only.
	Draft

	// Open orders are published and accept applications.
	Open

	// InProgress orders have an assigned executor.
	InProgress

	// WaitingConfirmation means the executor reported the work as done.
	WaitingConfirmation

	// Completed is final; the customer confirmed the work.
	Completed

	// Cancelled is final.
	Cancelled

	// Disputed is reached from WaitingConfirmation when either side disagrees.
	Disputed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		Draft:               "DRAFT",
		Open:                "OPEN",
		InProgress:          "IN_PROGRESS",
		WaitingConfirmation: "WAITING_CONFIRMATION",
		Completed:           "COMPLETED",
		Cancelled:           "CANCELLED",
		Disputed:            "DISPUTED",
	}
}

// ParseStatus converts the external name ("OPEN", "in_progress", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and values outside the enumeration.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsAssigned reports whether s is a status reached through acceptance of an
// application, i.e. one where the order must carry an executor.
func (s Status) IsAssigned() bool {
	return s == InProgress || s == WaitingConfirmation || s == Completed || s == Disputed
}

// ValidateCanHaveExecutor checks the consistency between status and assignment.
//
// Business Rules:
//   - Draft and Open orders must not have an executor
//   - InProgress, WaitingConfirmation, Completed and Disputed orders must have one
//   - Cancelled orders may have one (cancelled after acceptance) or not
func (s Status) ValidateCanHaveExecutor(hasExecutor bool) error {
	if hasExecutor && (s == Draft || s == Open) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an executor", s.String()),
		)
	}

	if !hasExecutor && s.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no executor", s.String()),
		)
	}

	return nil
}

// ActorRole is the relationship of the caller to the order.
type ActorRole int

const (
	RoleUnknown ActorRole = iota
	RoleCustomer
	RoleExecutor
	// RoleSystem is used for transitions that are side effects of other
	// operations (application acceptance), never for direct requests.
	RoleSystem
)

func (r ActorRole) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleExecutor:
		return "executor"
	case RoleSystem:
		return "system"
	default:
		return "unknown"
	}
}

// transitions is the complete table of allowed moves and the roles allowed to make them.
var transitions = map[Status]map[Status][]ActorRole{
	Draft: {
		Open: {RoleCustomer},
	},
	Open: {
		Cancelled:  {RoleCustomer},
		InProgress: {RoleSystem},
	},
	InProgress: {
		WaitingConfirmation: {RoleExecutor},
		Cancelled:           {RoleCustomer, RoleExecutor},
	},
	WaitingConfirmation: {
		Completed:  {RoleCustomer},
		InProgress: {RoleCustomer},
		Disputed:   {RoleCustomer, RoleExecutor},
	},
}

// Transition is the order state machine. It returns requested when the table
// allows current -> requested for role, and an *InvalidTransitionError otherwise.
// It holds no state and has no side effects.
//
// Example:
//
//	next, err := order.Transition(order.WaitingConfirmation, order.Completed, order.RoleCustomer)
//	// next == order.Completed, err == nil
//
//	_, err = order.Transition(order.Draft, order.Completed, order.RoleCustomer)
//	// errors.Is(err, order.ErrInvalidTransition) == true
func Transition(current, requested Status, role ActorRole) (Status, error) {
	roles, ok := transitions[current][requested]
	if !ok || !slices.Contains(roles, role) {
		return Unknown, NewInvalidTransitionError(current, requested, role)
	}
	return requested, nil
}

// CanTransition is the boolean form of Transition.
func CanTransition(current, requested Status, role ActorRole) bool {
	_, err := Transition(current, requested, role)
	return err == nil
}
