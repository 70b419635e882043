package commands_test

import (
	"errors"
	"testing"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/provider"
	"relocation/internal/core/ports"
	"relocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegistration() commands.Registration {
	return commands.Registration{
		Username:        "jdoe",
		Email:           "jdoe@example.com",
		Password:        "s3cret-pass",
		PasswordConfirm: "s3cret-pass",
		Details:         account.Details{FirstName: "Jane", LastName: "Doe"},
	}
}

func TestNewRegisterCustomerCommand_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *commands.Registration)
		wantErr error
	}{
		{
			name:    "missing username",
			mutate:  func(r *commands.Registration) { r.Username = "  " },
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "missing password",
			mutate:  func(r *commands.Registration) { r.Password = "" },
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name: "short password",
			mutate: func(r *commands.Registration) {
				r.Password = "short"
				r.PasswordConfirm = "short"
			},
			wantErr: errs.ErrValueIsOutOfRange,
		},
		{
			name:    "mismatched confirmation",
			mutate:  func(r *commands.Registration) { r.PasswordConfirm = "different-pass" },
			wantErr: commands.ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)

			_, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), reg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterCustomerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret-pass").Return("$2a$10$hash", nil).Once()

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.accounts.On("Add", ctx, mock.MatchedBy(func(a *account.Account) bool {
		return a.Username() == "jdoe" && a.Role() == account.RoleCustomer && a.PasswordHash() == "$2a$10$hash"
	})).Return(nil).Once()

	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), validRegistration())
	require.NoError(t, err)
	h := commands.NewRegisterCustomerCommandHandler(factoryFor(uow), hasher)

	require.NoError(t, h.Handle(ctx, cmd))
	hasher.AssertExpectations(t)
	uow.assertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_UsernameTaken(t *testing.T) {
	ctx := t.Context()

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", mock.Anything).Return("$2a$10$hash", nil).Once()

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.accounts.On("Add", ctx, mock.Anything).Return(errs.NewConflictError("account", "username jdoe")).Once()

	cmd, _ := commands.NewRegisterCustomerCommand(kernel.NewUUID(), validRegistration())
	h := commands.NewRegisterCustomerCommandHandler(factoryFor(uow), hasher)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
	uow.assertExpectations(t)
}

func TestRegisterProviderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()
	profileID := kernel.NewUUID()

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret-pass").Return("$2a$10$hash", nil).Once()

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.accounts.On("Add", ctx, mock.MatchedBy(func(a *account.Account) bool {
		return a.ID().IsEqual(accountID) && a.IsProvider()
	})).Return(nil).Once()
	uow.providers.On("Add", ctx, mock.MatchedBy(func(p *provider.Profile) bool {
		return p.ID().IsEqual(profileID) && p.AccountID().IsEqual(accountID) && p.TotalReviews() == 0
	})).Return(nil).Once()

	cmd, err := commands.NewRegisterProviderCommand(accountID, profileID, validRegistration(), provider.Info{
		CompanyName:     "Acme Movers",
		ContactPerson:   "Jo Smith",
		ServicesOffered: []string{"packing", "storage"},
	})
	require.NoError(t, err)
	h := commands.NewRegisterProviderCommandHandler(factoryFor(uow), hasher)

	require.NoError(t, h.Handle(ctx, cmd))
	uow.assertExpectations(t)
}

func TestNewRegisterProviderCommand_RequiresCompany(t *testing.T) {
	_, err := commands.NewRegisterProviderCommand(kernel.NewUUID(), kernel.NewUUID(), validRegistration(), provider.Info{
		ContactPerson: "Jo Smith",
	})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRegisterProviderCommand_RejectsShortPassword(t *testing.T) {
	reg := validRegistration()
	reg.Password = "1234567"
	reg.PasswordConfirm = "1234567"

	_, err := commands.NewRegisterProviderCommand(kernel.NewUUID(), kernel.NewUUID(), reg, provider.Info{
		CompanyName:   "Acme Movers",
		ContactPerson: "Jo Smith",
	})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestCreateSessionCommandHandler_Handle_Customer(t *testing.T) {
	ctx := t.Context()
	acc, err := account.NewAccount(kernel.NewUUID(), "jdoe", "", "hash", account.RoleCustomer, account.Details{})
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.accounts.On("GetByUsername", ctx, "jdoe").Return(acc, nil).Once()

	hasher := new(MockPasswordHasher)
	hasher.On("Compare", "hash", "s3cret-pass").Return(nil).Once()

	pair := ports.TokenPair{Access: "access", Refresh: "refresh"}
	issuer := new(MockTokenIssuer)
	issuer.On("Issue", ports.Claims{AccountID: acc.ID(), Role: account.RoleCustomer}).Return(pair, nil).Once()

	cmd, err := commands.NewCreateSessionCommand("jdoe", "s3cret-pass")
	require.NoError(t, err)
	h := commands.NewCreateSessionCommandHandler(factoryFor(uow), hasher, issuer)

	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, pair, got)
	issuer.AssertExpectations(t)
	uow.assertExpectations(t)
}

func TestCreateSessionCommandHandler_Handle_ProviderClaims(t *testing.T) {
	ctx := t.Context()
	acc, err := account.NewAccount(kernel.NewUUID(), "acme", "", "hash", account.RoleProvider, account.Details{})
	require.NoError(t, err)
	profile := newProfile(t, acc.ID())

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.accounts.On("GetByUsername", ctx, "acme").Return(acc, nil).Once()
	uow.providers.On("GetByAccount", ctx, acc.ID()).Return(profile, nil).Once()

	hasher := new(MockPasswordHasher)
	hasher.On("Compare", "hash", "s3cret-pass").Return(nil).Once()

	issuer := new(MockTokenIssuer)
	issuer.On("Issue", mock.MatchedBy(func(c ports.Claims) bool {
		return c.ProviderID != nil && c.ProviderID.IsEqual(profile.ID()) && c.Role == account.RoleProvider
	})).Return(ports.TokenPair{Access: "a", Refresh: "r"}, nil).Once()

	cmd, _ := commands.NewCreateSessionCommand("acme", "s3cret-pass")
	h := commands.NewCreateSessionCommandHandler(factoryFor(uow), hasher, issuer)

	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	issuer.AssertExpectations(t)
}

func TestCreateSessionCommandHandler_Handle_InvalidCredentials(t *testing.T) {
	ctx := t.Context()
	acc, err := account.NewAccount(kernel.NewUUID(), "jdoe", "", "hash", account.RoleCustomer, account.Details{})
	require.NoError(t, err)

	tests := []struct {
		name  string
		setup func(uow *MockUoW, hasher *MockPasswordHasher)
	}{
		{
			name: "unknown username",
			setup: func(uow *MockUoW, _ *MockPasswordHasher) {
				uow.accounts.On("GetByUsername", ctx, "jdoe").
					Return(nil, errs.NewObjectNotFoundError("account", "jdoe")).Once()
			},
		},
		{
			name: "wrong password",
			setup: func(uow *MockUoW, hasher *MockPasswordHasher) {
				uow.accounts.On("GetByUsername", ctx, "jdoe").Return(acc, nil).Once()
				hasher.On("Compare", "hash", "s3cret-pass").Return(errors.New("mismatch")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := newMockUoW()
			uow.expectRolledBack(ctx)
			hasher := new(MockPasswordHasher)
			issuer := new(MockTokenIssuer)
			tt.setup(uow, hasher)

			cmd, _ := commands.NewCreateSessionCommand("jdoe", "s3cret-pass")
			h := commands.NewCreateSessionCommandHandler(factoryFor(uow), hasher, issuer)

			_, err := h.Handle(ctx, cmd)
			require.ErrorIs(t, err, errs.ErrUnauthenticated)
			issuer.AssertNotCalled(t, "Issue", mock.Anything)
		})
	}
}

func TestRefreshSessionCommandHandler_Handle_AccountGone(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()

	issuer := new(MockTokenIssuer)
	issuer.On("ParseRefresh", "refresh-token").
		Return(ports.Claims{AccountID: accountID, Role: account.RoleCustomer}, nil).Once()

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.accounts.On("Get", ctx, accountID).Return(nil, errs.NewObjectNotFoundError("account", accountID.String())).Once()

	cmd, err := commands.NewRefreshSessionCommand("refresh-token")
	require.NoError(t, err)
	h := commands.NewRefreshSessionCommandHandler(factoryFor(uow), issuer)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
	uow.assertExpectations(t)
}

func TestUpdateProviderProfileCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	profile := newProfile(t, kernel.NewUUID())

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.providers.On("GetForUpdate", ctx, profile.ID()).Return(profile, nil).Once()
	uow.providers.On("Update", ctx, profile).Return(nil).Once()

	pricing := "from 500 EUR"
	available := false
	cmd, err := commands.NewUpdateProviderProfileCommand(providerActor(profile.ID()), profile.ID(), commands.ProfilePatch{
		PricingInfo: &pricing,
		Available:   &available,
	})
	require.NoError(t, err)
	h := commands.NewUpdateProviderProfileCommandHandler(factoryFor(uow))

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, pricing, profile.Info().PricingInfo)
	assert.Equal(t, "Acme Movers", profile.Info().CompanyName)
	assert.False(t, profile.IsAvailable())
	uow.assertExpectations(t)
}

func TestUpdateProviderProfileCommandHandler_Handle_OtherProvider(t *testing.T) {
	ctx := t.Context()
	profile := newProfile(t, kernel.NewUUID())

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.providers.On("GetForUpdate", ctx, profile.ID()).Return(profile, nil).Once()

	available := false
	cmd, _ := commands.NewUpdateProviderProfileCommand(providerActor(kernel.NewUUID()), profile.ID(), commands.ProfilePatch{
		Available: &available,
	})
	h := commands.NewUpdateProviderProfileCommandHandler(factoryFor(uow))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	assert.True(t, profile.IsAvailable())
	uow.assertExpectations(t)
}
