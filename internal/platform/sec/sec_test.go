// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bibble/internal/platform/sec"
)

// newTestTokenService builds a token service around a throwaway RSA key.
func newTestTokenService(t *testing.T, ttl time.Duration) *sec.TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	service, err := sec.NewTokenServiceFromPEM(privatePEM, publicPEM, "bibble.app", ttl)
	require.NoError(t, err)
	return service
}

var editor = sec.Identity{UserID: "user-1", Username: "ruth", Role: sec.RoleEditor}

/*
TestTokenService_RoundTrip verifies that an issued token verifies with its claims intact.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestTokenService(t, time.Hour)

	before := time.Now()
	token, err := service.Issue(editor)
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := service.Verify(token.Value)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ruth", claims.Username)
	assert.Equal(t, sec.RoleEditor, claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

/*
TestTokenService_Rejects covers expired tokens, foreign keys and garbage.
*/
func TestTokenService_Rejects(t *testing.T) {
	short := newTestTokenService(t, time.Millisecond)
	expired, err := short.Issue(editor)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	_, err = short.Verify(expired.Value)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)

	service := newTestTokenService(t, time.Hour)
	other := newTestTokenService(t, time.Hour)
	foreign, err := other.Issue(editor)
	require.NoError(t, err)
	_, err = service.Verify(foreign.Value)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)

	_, err = service.Verify("not-a-jwt")
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_Construction covers lifetime and role guards.
*/
func TestTokenService_Construction(t *testing.T) {
	_, err := sec.NewTokenServiceFromPEM(nil, nil, "bibble.app", 0)
	assert.ErrorContains(t, err, "lifetime must be positive")

	service := newTestTokenService(t, time.Hour)
	_, err = service.Issue(sec.Identity{UserID: "user-1", Role: "owner"})
	assert.ErrorContains(t, err, `role "owner"`)
}

/*
TestPasswordHash covers hashing bounds and comparison.
*/
func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct-horse")
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("correct-horse", hash))
	assert.False(t, sec.CheckPasswordHash("wrong-horse", hash))
	assert.False(t, sec.CheckPasswordHash("correct-horse", ""))

	_, err = sec.HashPassword("short")
	assert.Error(t, err)
	_, err = sec.HashPassword(strings.Repeat("x", sec.MaxPasswordBytes+1))
	assert.Error(t, err)
}

/*
TestUserRole_AtLeast checks the role hierarchy.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleEditor))
	assert.True(t, sec.RoleEditor.AtLeast(sec.RoleEditor))
	assert.False(t, sec.RoleViewer.AtLeast(sec.RoleEditor))
	assert.False(t, sec.UserRole("guest").IsValid())
}
