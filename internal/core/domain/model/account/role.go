package account

import (
	"fmt"

	"relocation/internal/pkg/errs"
)

// Role decides which records an account may see and change.
type Role string

const (
	// RoleCustomer is the default role of self-registered accounts.
	RoleCustomer Role = "customer"
	// RoleProvider accounts own exactly one provider profile.
	RoleProvider Role = "provider"
	// RoleAdmin is unrestricted.
	RoleAdmin Role = "admin"
)

func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleCustomer: {},
		RoleProvider: {},
		RoleAdmin:    {},
	}
}

// ParseRole maps a stored or transported role name to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

func (r Role) String() string {
	return string(r)
}
