// Package account provides the Account aggregate and the Role that drives
// access scoping. Provider-specific data lives in the provider package; an
// account with RoleProvider owns at most one provider.Profile.
package account
