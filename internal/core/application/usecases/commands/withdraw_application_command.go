package commands

import (
	"errors"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/pkg/guard"
)

var ErrWithdrawApplicationCommandIsNotConstructed = errors.New(
	"WithdrawApplicationCommand must be created via NewWithdrawApplicationCommand constructor",
)

type WithdrawApplicationCommand struct {
	executorID    kernel.UUID
	applicationID kernel.UUID
	guard         guard.ConstructorGuard
}

func NewWithdrawApplicationCommand(executorID, applicationID kernel.UUID) (WithdrawApplicationCommand, error) {
	if err := errors.Join(
		requireID("executorId", executorID),
		requireID("applicationId", applicationID),
	); err != nil {
		return WithdrawApplicationCommand{}, err
	}

	return WithdrawApplicationCommand{
		executorID:    executorID,
		applicationID: applicationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c WithdrawApplicationCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawApplicationCommandIsNotConstructed)
}

func (c WithdrawApplicationCommand) ExecutorID() kernel.UUID { return c.executorID }
func (c WithdrawApplicationCommand) ApplicationID() kernel.UUID { return c.applicationID }
