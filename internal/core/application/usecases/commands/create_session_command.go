package commands

import (
	"errors"
	"strings"

	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

var ErrCreateSessionCommandIsNotConstructed = errors.New(
	"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
)

// CreateSessionCommand exchanges a username and password for a token pair.
type CreateSessionCommand struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewCreateSessionCommand(username, password string) (CreateSessionCommand, error) {
	username = strings.TrimSpace(username)

	var err error
	if username == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("password"))
	}
	if err != nil {
		return CreateSessionCommand{}, err
	}

	return CreateSessionCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

func (c CreateSessionCommand) Username() string {
	return c.username
}

func (c CreateSessionCommand) Password() string {
	return c.password
}
