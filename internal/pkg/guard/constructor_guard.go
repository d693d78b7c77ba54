// Package guard holds the constructor guard used by value objects, entities,
// commands and queries to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as created through its constructor.
// Embed it in a type, set it with NewConstructorGuard in the constructor and call
// Validate from the type's own Validate method:
//
//	type Bid struct {
//	    price kernel.Money
//	    guard guard.ConstructorGuard
//	}
//
//	func (b Bid) Validate() error {
//	    return b.guard.Validate(ErrBidIsNotConstructed)
//	}
//
// The zero value is "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is the zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
