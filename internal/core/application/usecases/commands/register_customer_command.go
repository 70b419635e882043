package commands

import (
	"errors"
	"strings"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

const minPasswordLength = 8

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrPasswordMismatch = errs.NewValueIsInvalidErrorWithCause(
		"password_confirm", errors.New("passwords do not match"),
	)
)

// Registration is the credential and personal data shared by customer and
// provider sign-up.
type Registration struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	Details         account.Details
}

func (r Registration) validate() error {
	var passwordErr error
	switch {
	case r.Password == "":
		passwordErr = errs.NewValueIsRequiredError("password")
	case len(r.Password) < minPasswordLength:
		passwordErr = errs.NewValueIsOutOfRangeError("password length", len(r.Password), minPasswordLength, 128)
	case r.Password != r.PasswordConfirm:
		passwordErr = ErrPasswordMismatch
	}

	var usernameErr error
	if strings.TrimSpace(r.Username) == "" {
		usernameErr = account.ErrUsernameIsRequired
	}

	return errors.Join(usernameErr, passwordErr)
}

// RegisterCustomerCommand creates a customer account.
//
// Example:
//
//	cmd, err := NewRegisterCustomerCommand(kernel.NewUUID(), Registration{
//	    Username: "jdoe", Email: "jdoe@example.com",
//	    Password: "s3cret-pass", PasswordConfirm: "s3cret-pass",
//	})
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	registration Registration

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(accountID kernel.UUID, registration Registration) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		registration.validate(),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}
	cmd.registration = registration

	return cmd, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c RegisterCustomerCommand) Registration() Registration {
	return c.registration
}

func (c *RegisterCustomerCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}
