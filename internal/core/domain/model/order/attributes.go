package order

import (
	"fmt"
	"strings"

	"workmarket/internal/pkg/errs"
)

// Urgency is the caller-declared priority tier. It feeds the ranking weight.
type Urgency int

const (
	UrgencyUnknown Urgency = iota
	UrgencyLow
	UrgencyMedium
	UrgencyHigh
	UrgencyUrgent
)

var urgencyNames = map[Urgency]string{
	UrgencyLow:    "low",
	UrgencyMedium: "medium",
	UrgencyHigh:   "high",
	UrgencyUrgent: "urgent",
}

func ParseUrgency(s string) (Urgency, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return UrgencyMedium, nil
	}
	for u, n := range urgencyNames {
		if n == name {
			return u, nil
		}
	}
	return UrgencyUnknown, errs.NewValueIsInvalidErrorWithCause("urgency", fmt.Errorf("%q is not a valid urgency", s))
}

func (u Urgency) Validate() error {
	if _, ok := urgencyNames[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("urgency", fmt.Errorf("%d is not a valid urgency", u))
	}
	return nil
}

func (u Urgency) String() string {
	if n, ok := urgencyNames[u]; ok {
		return n
	}
	return "unknown"
}

// PriceType tells how the customer intends to pay.
type PriceType int

const (
	PriceTypeUnknown PriceType = iota
	PriceTypeFixed
	PriceTypeHourly
	PriceTypeNegotiable
)

var priceTypeNames = map[PriceType]string{
	PriceTypeFixed:      "fixed",
	PriceTypeHourly:     "hourly",
	PriceTypeNegotiable: "negotiable",
}

func ParsePriceType(s string) (PriceType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return PriceTypeNegotiable, nil
	}
	for p, n := range priceTypeNames {
		if n == name {
			return p, nil
		}
	}
	return PriceTypeUnknown, errs.NewValueIsInvalidErrorWithCause("priceType", fmt.Errorf("%q is not a valid price type", s))
}

func (p PriceType) Validate() error {
	if _, ok := priceTypeNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priceType", fmt.Errorf("%d is not a valid price type", p))
	}
	return nil
}

func (p PriceType) String() string {
	if n, ok := priceTypeNames[p]; ok {
		return n
	}
	return "unknown"
}
