package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/provider"
	"relocation/internal/pkg/guard"
)

var ErrRegisterProviderCommandIsNotConstructed = errors.New(
	"RegisterProviderCommand must be created via NewRegisterProviderCommand constructor",
)

// RegisterProviderCommand creates a provider account together with its
// profile.
type RegisterProviderCommand struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	profileID    kernel.UUID
	registration Registration
	info         provider.Info

	guard guard.ConstructorGuard
}

func NewRegisterProviderCommand(
	accountID kernel.UUID,
	profileID kernel.UUID,
	registration Registration,
	info provider.Info,
) (RegisterProviderCommand, error) {
	cmd := RegisterProviderCommand{
		info:  info,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(accountID, profileID),
		registration.validate(),
		info.Validate(),
	); err != nil {
		return RegisterProviderCommand{}, err
	}
	cmd.registration = registration

	return cmd, nil
}

func (c RegisterProviderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProviderCommandIsNotConstructed)
}

func (c RegisterProviderCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c RegisterProviderCommand) ProfileID() kernel.UUID {
	return c.profileID
}

func (c RegisterProviderCommand) Registration() Registration {
	return c.registration
}

func (c RegisterProviderCommand) Info() provider.Info {
	return c.info
}

func (c *RegisterProviderCommand) setIDs(accountID, profileID kernel.UUID) error {
	if err := errors.Join(accountID.Validate(), profileID.Validate()); err != nil {
		return err
	}

	c.accountID = accountID
	c.profileID = profileID
	return nil
}
