package token_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/utils/token"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-that-is-long-enough"

func TestIssueAndParse(t *testing.T) {
	signed, err := token.IssueOwnerToken("owner-1", secret, time.Hour)
	require.NoError(t, err)

	owner, err := token.ParseOwnerToken(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", owner)
}

func TestParseOwnerToken_Rejects(t *testing.T) {
	expired, err := token.IssueOwnerToken("owner-1", secret, -time.Minute)
	require.NoError(t, err)
	_, err = token.ParseOwnerToken(expired, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := token.IssueOwnerToken("owner-1", secret, time.Hour)
	require.NoError(t, err)
	_, err = token.ParseOwnerToken(valid, "another-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = token.ParseOwnerToken(noSubject, secret)
	assert.ErrorIs(t, err, token.ErrMissingSubject)

	_, err = token.IssueOwnerToken("", secret, time.Hour)
	assert.ErrorIs(t, err, token.ErrMissingSubject)
}
