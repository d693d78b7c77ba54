package application

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

const MaxMessageLength = 2000

var ErrBidIsNotConstructed = errs.NewValueIsRequiredError("bid must be created via NewBid")

// Bid is what the executor offers: a positive price, an optional duration in days,
// a cover message and an optional date from which they are available.
type Bid struct {
	proposedPrice        kernel.Money
	proposedDurationDays *int
	message              string
	availableFrom        *time.Time
	guard                guard.ConstructorGuard
}

func NewBid(proposedPrice kernel.Money, proposedDurationDays *int, message string, availableFrom *time.Time) (Bid, error) {
	message = strings.TrimSpace(message)

	var errList []error
	if err := proposedPrice.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("proposedPrice", err))
	} else if proposedPrice.IsZero() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("proposedPrice", errors.New("must be positive")))
	}
	if proposedDurationDays != nil && *proposedDurationDays <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"proposedDurationDays",
			fmt.Errorf("%d is not greater than 0", *proposedDurationDays),
		))
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("message", fmt.Errorf("longer than %d characters", MaxMessageLength)))
	}
	if err := errors.Join(errList...); err != nil {
		return Bid{}, err
	}

	return Bid{
		proposedPrice:        proposedPrice,
		proposedDurationDays: proposedDurationDays,
		message:              message,
		availableFrom:        availableFrom,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

func (b Bid) Validate() error {
	return b.guard.Validate(ErrBidIsNotConstructed)
}

func (b Bid) ProposedPrice() kernel.Money { return b.proposedPrice }
func (b Bid) ProposedDurationDays() *int { return b.proposedDurationDays }
func (b Bid) Message() string { return b.message }
func (b Bid) AvailableFrom() *time.Time { return b.availableFrom }
