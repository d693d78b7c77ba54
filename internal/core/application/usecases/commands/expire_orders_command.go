package commands

import (
	"errors"
	"time"

	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

const DefaultExpiryBatchSize = 100

var ErrExpireOrdersCommandIsNotConstructed = errors.New(
	"ExpireOrdersCommand must be created via NewExpireOrdersCommand constructor",
)

// ExpireOrdersCommand unpublishes open orders whose deadline passed before now.
// It is issued by the expiry job.
type ExpireOrdersCommand struct {
	now       time.Time
	batchSize int
	guard     guard.ConstructorGuard
}

func NewExpireOrdersCommand(now time.Time, batchSize int) (ExpireOrdersCommand, error) {
	if now.IsZero() {
		return ExpireOrdersCommand{}, errs.NewValueIsRequiredError("now")
	}
	if batchSize <= 0 {
		batchSize = DefaultExpiryBatchSize
	}
	return ExpireOrdersCommand{now: now, batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpireOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOrdersCommandIsNotConstructed)
}

func (c ExpireOrdersCommand) Now() time.Time { return c.now }
func (c ExpireOrdersCommand) BatchSize() int { return c.batchSize }
