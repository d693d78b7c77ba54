package application

import (
	"fmt"
	"strings"

	"workmarket/internal/pkg/errs"
)

type Status int

const (
	StatusUnknown Status = iota
	Pending
	Accepted
	Rejected
	Withdrawn
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Accepted:  "accepted",
	Rejected:  "rejected",
	Withdrawn: "withdrawn",
}

func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid application status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid application status", s))
	}
	return nil
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// IsDecided reports whether the customer already answered the application.
func (s Status) IsDecided() bool {
	return s == Accepted || s == Rejected
}
