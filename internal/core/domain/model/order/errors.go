package order

import (
	"errors"
	"fmt"

	"workmarket/internal/pkg/errs"
)

// ErrInvalidTransition is matched by every *InvalidTransitionError. The error also
// matches errs.ErrInvalidState.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError names the current state, the requested state and the
// role that asked for the move.
type InvalidTransitionError struct {
	From Status
	To   Status
	Role ActorRole
}

func NewInvalidTransitionError(from, to Status, role ActorRole) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Role: role}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s is not allowed for %s", ErrInvalidTransition, e.From, e.To, e.Role)
}

func (e *InvalidTransitionError) Unwrap() []error {
	return []error{ErrInvalidTransition, errs.ErrInvalidState}
}
