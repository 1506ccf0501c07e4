package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("top-secret", time.Hour)
	id := uuid.New()

	tok, err := svc.GenerateAccessToken(id)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, id.String(), claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("top-secret", time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	tok, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("a", time.Hour).GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = NewHMACService("b", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_RejectsOtherAlgorithms(t *testing.T) {
	id := uuid.New()
	c := Claims{
		UserID:    id,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   id.String(),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, c).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewHMACService("s", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_EmptySecretCannotSign(t *testing.T) {
	_, err := NewHMACService("", time.Hour).GenerateAccessToken(uuid.New())
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
