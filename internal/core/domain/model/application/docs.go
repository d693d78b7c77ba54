// Package application provides the Application entity: an executor's bid on an
// order, and its small status lifecycle.
//
// An application starts Pending and moves exactly once, to Accepted, Rejected or
// Withdrawn. Applications are never deleted.
package application
