package auth

import (
	"testing"
	"time"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/ports"
	"relocation/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	_ ports.TokenIssuer    = (*JWTIssuer)(nil)
	_ ports.PasswordHasher = BcryptHasher{}
)

func testIssuer() *JWTIssuer {
	return NewJWTIssuer(TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
		Issuer:        "relocation",
	})
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := testIssuer()
	providerID := kernel.NewUUID()
	claims := ports.Claims{AccountID: kernel.NewUUID(), Role: account.RoleProvider, ProviderID: &providerID}

	pair, err := issuer.Issue(claims)
	require.NoError(t, err)

	access, err := issuer.ParseAccess(pair.Access)
	require.NoError(t, err)
	assert.True(t, access.AccountID.IsEqual(claims.AccountID))
	assert.Equal(t, account.RoleProvider, access.Role)
	require.NotNil(t, access.ProviderID)
	assert.True(t, access.ProviderID.IsEqual(providerID))

	refresh, err := issuer.ParseRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.True(t, refresh.AccountID.IsEqual(claims.AccountID))
}

func TestJWTIssuer_CustomerHasNoProvider(t *testing.T) {
	issuer := testIssuer()
	pair, err := issuer.Issue(ports.Claims{AccountID: kernel.NewUUID(), Role: account.RoleCustomer})
	require.NoError(t, err)

	claims, err := issuer.ParseAccess(pair.Access)
	require.NoError(t, err)
	assert.Nil(t, claims.ProviderID)
}

func TestJWTIssuer_KindsAreNotInterchangeable(t *testing.T) {
	issuer := testIssuer()
	pair, err := issuer.Issue(ports.Claims{AccountID: kernel.NewUUID(), Role: account.RoleCustomer})
	require.NoError(t, err)

	_, err = issuer.ParseAccess(pair.Refresh)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	_, err = issuer.ParseRefresh(pair.Access)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestJWTIssuer_Expired(t *testing.T) {
	issuer := testIssuer()
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
	pair, err := issuer.Issue(ports.Claims{AccountID: kernel.NewUUID(), Role: account.RoleCustomer})
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.ParseAccess(pair.Access)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	_, err = issuer.ParseRefresh(pair.Refresh)
	require.NoError(t, err, "refresh tokens live longer")
}

func TestJWTIssuer_RejectsTamperedAndForeignTokens(t *testing.T) {
	issuer := testIssuer()

	_, err := issuer.ParseAccess("not-a-token")
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	foreign := NewJWTIssuer(TokenConfig{AccessSecret: "other", RefreshSecret: "other", AccessTTL: time.Minute})
	pair, err := foreign.Issue(ports.Claims{AccountID: kernel.NewUUID(), Role: account.RoleAdmin})
	require.NoError(t, err)
	_, err = issuer.ParseAccess(pair.Access)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: kernel.NewUUID().String()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.ParseAccess(unsigned)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	require.NoError(t, hasher.Compare(hash, "s3cret-pass"))
	require.ErrorIs(t, hasher.Compare(hash, "wrong"), errs.ErrUnauthenticated)
}
