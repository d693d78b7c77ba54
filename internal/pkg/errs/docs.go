// Package errs provides the typed errors shared by the domain, the application
// layer and the adapters.
//
// Every error type follows the same shape:
//   - a sentinel variable (ErrObjectNotFound, ErrConflict, ...) usable with errors.Is
//   - a struct carrying the details (ParamName, ID, Cause, ...)
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Validation failures use ValueIsRequiredError, ValueIsInvalidError and
// ValueIsOutOfRangeError. Business outcomes of the order lifecycle use
// ObjectNotFoundError, ForbiddenError, InvalidStateError and ConflictError;
// the HTTP adapter maps each sentinel to its own status code.
package errs
