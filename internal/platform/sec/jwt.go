// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec holds the dashboard's credentials: bcrypt password hashes,
// RS256 access tokens and the admin > editor > viewer role ladder.
//
// # Tokens
//
// There are no refresh tokens. A dashboard session is one access token that
// lives for the service's TTL; when it expires the editor signs in again.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails parsing or verification.
var ErrInvalidToken = errors.New("auth: invalid token")

// AuthClaims is the payload of a dashboard access token.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID   string   `json:"uid"`
	Username string   `json:"unm"`
	Role     UserRole `json:"rol"`
}

// Identity is the account a token is issued to.
type Identity struct {
	UserID   string
	Username string
	Role     UserRole
}

// AccessToken is a signed token and the moment it stops being accepted.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenService issues and verifies RS256 access tokens.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	ttl        time.Duration

	now func() time.Time
}

// NewTokenService loads the PEM key pair from disk.
func NewTokenService(privateKeyPath, publicKeyPath, issuer string, ttl time.Duration) (*TokenService, error) {
	privatePEM, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("auth: read private key %s: %w", privateKeyPath, err)
	}

	publicPEM, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("auth: read public key %s: %w", publicKeyPath, err)
	}

	return NewTokenServiceFromPEM(privatePEM, publicPEM, issuer, ttl)
}

// NewTokenServiceFromPEM builds a [TokenService] from in-memory PEM blocks.
func NewTokenServiceFromPEM(privatePEM, publicPEM []byte, issuer string, ttl time.Duration) (*TokenService, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("auth: token lifetime must be positive, got %s", ttl)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("auth: parse private key: %w", err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("auth: parse public key: %w", err)
	}

	return &TokenService{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
		ttl:        ttl,
		now:        time.Now,
	}, nil
}

// Issue signs a token for who.
func (service *TokenService) Issue(who Identity) (AccessToken, error) {
	if !who.Role.IsValid() {
		return AccessToken{}, fmt.Errorf("auth: cannot issue a token for role %q", who.Role)
	}

	issuedAt := service.now()
	expiresAt := issuedAt.Add(service.ttl)

	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   who.UserID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   who.UserID,
		Username: who.Username,
		Role:     who.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(service.privateKey)
	if err != nil {
		return AccessToken{}, fmt.Errorf("auth: sign token: %w", err)
	}
	return AccessToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify checks signature, issuer and expiry, and rejects tokens that carry
// a role this build does not know.
func (service *TokenService) Verify(raw string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return service.publicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !claims.Role.IsValid() || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
