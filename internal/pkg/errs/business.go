package errs

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrConflict     = errors.New("conflict")
)

// ForbiddenError is returned when the actor lacks the relationship an operation
// requires, e.g. a user who is not the order's customer tries to accept a bid.
type ForbiddenError struct {
	Actor  any
	Action string
}

func NewForbiddenError(actor any, action string) *ForbiddenError {
	return &ForbiddenError{Actor: actor, Action: action}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrForbidden, sanitize(e.Actor), e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError is returned when an operation is not legal for the current
// status of an order or application.
type InvalidStateError struct {
	Object string
	State  any
	Reason string
}

func NewInvalidStateError(object string, state any, reason string) *InvalidStateError {
	return &InvalidStateError{Object: object, State: state, Reason: reason}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s is %s, %s", ErrInvalidState, e.Object, sanitize(e.State), e.Reason)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ConflictError is returned when another actor already changed the object:
// a duplicate application, or an order assigned by a concurrent accept.
type ConflictError struct {
	Object string
	Reason string
}

func NewConflictError(object, reason string) *ConflictError {
	return &ConflictError{Object: object, Reason: reason}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConflict, e.Object, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
