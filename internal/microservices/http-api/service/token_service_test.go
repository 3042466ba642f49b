package service

import (
	"testing"
	"time"

	"exlibris/internal/shared"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testUserID = "5b1f0a52-3f3e-4c59-9a4e-1f1b4a9c2d10"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(shared.Identity{UserID: testUserID, Username: "reader"})
	require.NoError(t, err)

	identity, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, identity.UserID)
	assert.Equal(t, "reader", identity.Username)
	assert.Equal(t, "user", identity.Role)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService(testSecret, time.Hour).Issue(shared.Identity{UserID: testUserID})
	require.NoError(t, err)

	_, err = NewTokenService("another-secret-another-secret-xx", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService(testSecret, time.Minute).(*tokenService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Issue(shared.Identity{UserID: testUserID})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenRejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{"user_id": testUserID, "iss": tokenIssuer, "exp": time.Now().Add(time.Hour).Unix()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService(testSecret, time.Hour).Validate(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := NewTokenService(testSecret, time.Hour).Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRequiresUUID(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	_, err := svc.Issue(shared.Identity{})
	assert.Error(t, err)
	_, err = svc.Issue(shared.Identity{UserID: "bob"})
	assert.Error(t, err)
}
