package ports

import (
	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns an Unauthenticated error when password does not match hash.
	Compare(hash, password string) error
}

// Claims is what a token asserts about its bearer.
type Claims struct {
	AccountID  kernel.UUID
	Role       account.Role
	ProviderID *kernel.UUID
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	Access  string
	Refresh string
}

// TokenIssuer issues and verifies access and refresh tokens. Parse methods
// return an Unauthenticated error for expired, malformed or wrongly signed
// tokens, and for a token of the other kind.
type TokenIssuer interface {
	Issue(claims Claims) (TokenPair, error)
	ParseAccess(token string) (Claims, error)
	ParseRefresh(token string) (Claims, error)
}
