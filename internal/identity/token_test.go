package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue("uid-1", TokenClaims{Email: "owner@example.com", Role: "owner", OwnerID: "K7M3PQ2X", TokenType: TokenTypeID}, time.Hour)
	require.NoError(t, err)

	claims, err := issuer.Parse(token, TokenTypeID)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.Subject)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, "K7M3PQ2X", claims.OwnerID)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenIssuer_WrongType(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	token, err := issuer.Issue("uid-1", TokenClaims{TokenType: TokenTypeExchange}, time.Minute)
	require.NoError(t, err)

	_, err = issuer.Parse(token, TokenTypeID)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	issued := time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }
	token, err := issuer.Issue("uid-1", TokenClaims{TokenType: TokenTypeExchange}, 5*time.Minute)
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(6 * time.Minute) }
	_, err = issuer.Parse(token, TokenTypeExchange)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_ForeignSignature(t *testing.T) {
	token, err := NewTokenIssuer("other-secret").Issue("uid-1", TokenClaims{TokenType: TokenTypeID}, time.Hour)
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret").Parse(token, TokenTypeID)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
