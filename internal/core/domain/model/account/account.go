package account

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

const maxUsernameLength = 150

var (
	ErrUsernameIsRequired      = errs.NewValueIsRequiredError("username")
	ErrPasswordHashIsRequired  = errs.NewValueIsRequiredError("password")
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Details holds the personal information captured at registration.
type Details struct {
	FirstName string
	LastName  string
	Contact   string
	Address   string
}

// Account is a registered user of the marketplace: a customer planning a
// move, a provider offering services, or an administrator.
//
// Invariants:
//   - username is non-empty and unique (uniqueness is enforced by storage)
//   - email, when present, is a valid address
//   - the password is only ever held as a hash
//   - role is one of customer, provider, admin
type Account struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	role         Role
	details      Details
	verified     bool
	joinedAt     time.Time
	guard        guard.ConstructorGuard
}

// NewAccount registers a new, unverified account.
//
// Example:
//
//	hash, _ := hasher.Hash("s3cret-pass")
//	acc, err := account.NewAccount(kernel.NewUUID(), "jdoe", "jdoe@example.com", hash,
//	    account.RoleCustomer, account.Details{FirstName: "Jane"})
func NewAccount(
	id kernel.UUID,
	username string,
	email string,
	passwordHash string,
	role Role,
	details Details,
) (*Account, error) {
	a := &Account{
		details:  details,
		joinedAt: time.Now().UTC(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setUsername(username),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount rebuilds an account from storage without re-running
// registration rules.
func RestoreAccount(
	id kernel.UUID,
	username string,
	email string,
	passwordHash string,
	role Role,
	details Details,
	verified bool,
	joinedAt time.Time,
) *Account {
	return &Account{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		details:      details,
		verified:     verified,
		joinedAt:     joinedAt,
		guard:        guard.NewConstructorGuard(),
	}
}

func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) ID() kernel.UUID {
	return a.id
}

func (a *Account) Username() string {
	return a.username
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) Role() Role {
	return a.role
}

func (a *Account) Details() Details {
	return a.details
}

func (a *Account) IsVerified() bool {
	return a.verified
}

func (a *Account) JoinedAt() time.Time {
	return a.joinedAt
}

func (a *Account) IsProvider() bool {
	return a.role == RoleProvider
}

func (a *Account) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Verify marks the account as verified.
func (a *Account) Verify() {
	a.verified = true
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}
	if len(username) > maxUsernameLength {
		return errs.NewValueIsOutOfRangeError("username length", len(username), 1, maxUsernameLength)
	}
	a.username = username
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		a.email = ""
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
