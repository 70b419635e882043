// Package auth implements the credential ports: bcrypt password hashing and
// HS256 JWT access/refresh tokens.
package auth

import (
	"time"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/ports"
	"relocation/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
)

const (
	kindAccess  = "access"
	kindRefresh = "refresh"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	Kind       string `json:"typ"`
	Role       string `json:"role"`
	ProviderID string `json:"provider_id,omitempty"`
}

type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// JWTIssuer signs access and refresh tokens with separate secrets, so one
// kind can never be replayed as the other.
type JWTIssuer struct {
	cfg TokenConfig
	now func() time.Time
}

func NewJWTIssuer(cfg TokenConfig) *JWTIssuer {
	return &JWTIssuer{cfg: cfg, now: time.Now}
}

func (i *JWTIssuer) Issue(claims ports.Claims) (ports.TokenPair, error) {
	access, err := i.sign(claims, kindAccess, []byte(i.cfg.AccessSecret), i.cfg.AccessTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}
	refresh, err := i.sign(claims, kindRefresh, []byte(i.cfg.RefreshSecret), i.cfg.RefreshTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{Access: access, Refresh: refresh}, nil
}

func (i *JWTIssuer) ParseAccess(token string) (ports.Claims, error) {
	return i.parse(token, kindAccess, []byte(i.cfg.AccessSecret))
}

func (i *JWTIssuer) ParseRefresh(token string) (ports.Claims, error) {
	return i.parse(token, kindRefresh, []byte(i.cfg.RefreshSecret))
}

func (i *JWTIssuer) sign(claims ports.Claims, kind string, secret []byte, ttl time.Duration) (string, error) {
	now := i.now()
	tc := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.AccountID.String(),
			Issuer:    i.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Kind: kind,
		Role: claims.Role.String(),
	}
	if claims.ProviderID != nil {
		tc.ProviderID = claims.ProviderID.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(secret)
}

func (i *JWTIssuer) parse(token, kind string, secret []byte) (ports.Claims, error) {
	var tc tokenClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	if _, err := parser.ParseWithClaims(token, &tc, func(*jwt.Token) (any, error) {
		return secret, nil
	}); err != nil {
		return ports.Claims{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	now := i.now()
	if !tc.VerifyExpiresAt(now, true) {
		return ports.Claims{}, errs.NewUnauthenticatedError("token expired")
	}
	if i.cfg.Issuer != "" && !tc.VerifyIssuer(i.cfg.Issuer, true) {
		return ports.Claims{}, errs.NewUnauthenticatedError("unexpected token issuer")
	}
	if tc.Kind != kind {
		return ports.Claims{}, errs.NewUnauthenticatedError("expected " + kind + " token")
	}

	return tc.toPorts()
}

func (tc tokenClaims) toPorts() (ports.Claims, error) {
	accountID, err := kernel.UUIDFromString(tc.Subject)
	if err != nil {
		return ports.Claims{}, errs.NewUnauthenticatedErrorWithCause("invalid token subject", err)
	}
	role, err := account.ParseRole(tc.Role)
	if err != nil {
		return ports.Claims{}, errs.NewUnauthenticatedErrorWithCause("invalid token role", err)
	}

	claims := ports.Claims{AccountID: accountID, Role: role}
	if tc.ProviderID != "" {
		providerID, parseErr := kernel.UUIDFromString(tc.ProviderID)
		if parseErr != nil {
			return ports.Claims{}, errs.NewUnauthenticatedErrorWithCause("invalid token provider", parseErr)
		}
		claims.ProviderID = &providerID
	}
	return claims, nil
}
